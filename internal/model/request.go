package model

import "time"

type LegStatus string

const (
	LegPending  LegStatus = "PENDING"
	LegApproved LegStatus = "APPROVED"
	LegRejected LegStatus = "REJECTED"
)

// VolunteerRequest is the parent of a request sent to one or more organizations.
// PendingLegs counts children still awaiting a decision.
type VolunteerRequest struct {
	Entity
	VolunteerID     string     `gorm:"type:varchar(128);index;not null" json:"volunteer_id"`
	PostID          string     `gorm:"type:varchar(128)" json:"post_id,omitempty"`
	Title           string     `gorm:"type:text" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	Location        string     `gorm:"type:text" json:"location"`
	Priority        Priority   `gorm:"type:varchar(32);not null;default:'MEDIUM'" json:"priority"`
	Needs           StringList `json:"needs"`
	Message         string     `gorm:"type:text" json:"message"`
	ImageURL        string     `gorm:"type:text" json:"image_url"`
	OrganizationIDs StringList `json:"organization_ids"`
	PendingLegs     int        `gorm:"not null;default:0" json:"pending_legs"`
}

func (VolunteerRequest) TableName() string {
	return CollectionRequests
}

// IsResolved reports whether every leg has been approved or rejected.
func (r VolunteerRequest) IsResolved() bool {
	return r.PendingLegs == 0
}

// RequestLeg is the copy of a request addressed to a single organization.
type RequestLeg struct {
	Entity
	RequestID       string     `gorm:"type:varchar(128);index;not null" json:"request_id"`
	VolunteerID     string     `gorm:"type:varchar(128);index;not null" json:"volunteer_id"`
	OrganizationID  string     `gorm:"type:varchar(128);index;not null" json:"organization_id"`
	Status          LegStatus  `gorm:"type:varchar(16);not null;default:'PENDING'" json:"status"`
	ApprovedByOrgID string     `gorm:"type:varchar(128)" json:"approved_by_org_id,omitempty"`
	CreatedPostID   string     `gorm:"type:varchar(128)" json:"created_post_id,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
}

func (RequestLeg) TableName() string {
	return CollectionRequestLegs
}

// RequestView joins a leg with its parent payload for inbox listings.
type RequestView struct {
	Leg     *RequestLeg       `json:"leg"`
	Request *VolunteerRequest `json:"request"`
}

// RequestStatus is the full picture of one request across its legs.
type RequestStatus struct {
	Request  *VolunteerRequest `json:"request"`
	Legs     []*RequestLeg     `json:"legs"`
	Resolved bool              `json:"resolved"`
}

// Models lists every persisted type, for migrations.
func Models() []interface{} {
	return []interface{}{
		&Volunteer{},
		&Organization{},
		&EmailClaim{},
		&Post{},
		&Follow{},
		&Rating{},
		&Notification{},
		&VolunteerRequest{},
		&RequestLeg{},
	}
}
