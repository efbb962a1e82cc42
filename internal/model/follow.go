package model

type Follow struct {
	Entity
	VolunteerID    string `gorm:"type:varchar(128);index;not null" json:"volunteer_id"`
	OrganizationID string `gorm:"type:varchar(128);index;not null" json:"organization_id"`
}

func (Follow) TableName() string {
	return CollectionFollows
}

// FollowID is the key of the single follow edge allowed per pair.
func FollowID(volunteerID, organizationID string) string {
	return volunteerID + ":" + organizationID
}
