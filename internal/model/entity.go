package model

import (
	"time"

	"gorm.io/datatypes"
)

// Collection names. Each one is both a store path and a SQL table.
const (
	CollectionVolunteers    = "volunteers"
	CollectionOrganizations = "organizations"
	CollectionEmailClaims   = "email_claims"
	CollectionPosts         = "posts"
	CollectionFollows       = "follows"
	CollectionRatings       = "ratings"
	CollectionNotifications = "notifications"
	CollectionRequests      = "volunteer_requests"
	CollectionRequestLegs   = "request_legs"
)

// Entity carries the fields shared by every stored record.
type Entity struct {
	ID        string    `gorm:"type:varchar(128);primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
}

// DocumentID returns the record key.
func (e Entity) DocumentID() string {
	return e.ID
}

// Touch stamps creation and update times on a record about to be written.
func (e *Entity) Touch(now time.Time) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
}

// StringList is an ordered list of strings stored as a JSON column.
type StringList = datatypes.JSONSlice[string]

// UserType tells volunteers and organizations apart in tokens and notifications.
type UserType string

const (
	UserTypeVolunteer    UserType = "volunteer"
	UserTypeOrganization UserType = "organization"
)

func (t UserType) Valid() bool {
	return t == UserTypeVolunteer || t == UserTypeOrganization
}

// EmailClaim reserves an email address for one account of a given type.
// Its ID is "<user type>:<normalized email>".
type EmailClaim struct {
	Entity
	UserID   string   `gorm:"type:varchar(128);not null" json:"user_id"`
	UserType UserType `gorm:"type:varchar(32);not null" json:"user_type"`
}

func (EmailClaim) TableName() string {
	return CollectionEmailClaims
}

// EmailClaimID builds the deterministic claim key.
func EmailClaimID(userType UserType, email string) string {
	return string(userType) + ":" + email
}
