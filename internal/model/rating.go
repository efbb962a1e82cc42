package model

const (
	MinScore = 0.0
	MaxScore = 5.0
)

type Rating struct {
	Entity
	VolunteerID    string  `gorm:"type:varchar(128);index;not null" json:"volunteer_id"`
	OrganizationID string  `gorm:"type:varchar(128);index;not null" json:"organization_id"`
	Score          float64 `gorm:"not null" json:"score"`
	Comment        string  `gorm:"type:text" json:"comment"`
	Anonymous      bool    `gorm:"not null;default:false" json:"anonymous"`
}

func (Rating) TableName() string {
	return CollectionRatings
}

// RatingID is the key of the single rating a volunteer may leave on an organization.
func RatingID(volunteerID, organizationID string) string {
	return volunteerID + ":" + organizationID
}

// ScoreInRange reports whether s lies within [MinScore, MaxScore].
func ScoreInRange(s float64) bool {
	return s >= MinScore && s <= MaxScore
}
