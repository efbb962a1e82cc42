// internal/service/organization.go
package service

import (
	"context"
	"strings"

	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/repository"
)

// OrganizationService serves organization profiles and search.
type OrganizationService struct {
	repo         repository.OrganizationRepositoryIface
	cacheService *CacheService
}

func NewOrganizationService(repo repository.OrganizationRepositoryIface, cacheService *CacheService) *OrganizationService {
	return &OrganizationService{repo: repo, cacheService: cacheService}
}

// GetOrganization returns the sanitized profile, from cache when possible.
func (s *OrganizationService) GetOrganization(ctx context.Context, id string) (*model.Organization, error) {
	if s.cacheService == nil {
		org, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return org.Sanitized(), nil
	}

	var org model.Organization
	err := s.cacheService.GetOrSet(ctx, organizationKey(id), &org, func() (interface{}, error) {
		found, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return found.Sanitized(), nil
	})
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// SearchOrganizations matches approved organizations by keyword over
// name, description, location and tags. An empty keyword lists them all.
func (s *OrganizationService) SearchOrganizations(ctx context.Context, keyword string) ([]*model.Organization, error) {
	orgs, err := s.repo.FindByApproval(ctx, true)
	if err != nil {
		return nil, err
	}

	out := make([]*model.Organization, 0, len(orgs))
	for _, org := range orgs {
		if containsFold(keyword, org.Name, org.Description, org.Location, strings.Join(org.Tags, " ")) {
			out = append(out, org.Sanitized())
		}
	}
	return out, nil
}
