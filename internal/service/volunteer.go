// internal/service/volunteer.go
package service

import (
	"context"
	"strings"

	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/repository"
)

type VolunteerService struct {
	repo repository.VolunteerRepositoryIface
}

func NewVolunteerService(repo repository.VolunteerRepositoryIface) *VolunteerService {
	return &VolunteerService{repo: repo}
}

func (s *VolunteerService) GetVolunteer(ctx context.Context, id string) (*model.Volunteer, error) {
	volunteer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return volunteer.Sanitized(), nil
}

// SearchVolunteers matches volunteers by name, surname or skills.
func (s *VolunteerService) SearchVolunteers(ctx context.Context, keyword string) ([]*model.Volunteer, error) {
	volunteers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*model.Volunteer, 0, len(volunteers))
	for _, v := range volunteers {
		if v.IsDeleted {
			continue
		}
		if containsFold(keyword, v.Name, v.Surname, strings.Join(v.Skills, " ")) {
			out = append(out, v.Sanitized())
		}
	}
	return out, nil
}
