package model

type NotificationType string

const (
	NotificationRequestSent          NotificationType = "REQUEST_SENT"
	NotificationRequestApproved      NotificationType = "REQUEST_APPROVED"
	NotificationRequestRejected      NotificationType = "REQUEST_REJECTED"
	NotificationFollowedOrgPosted    NotificationType = "FOLLOWED_ORG_POSTED"
	NotificationRequestReceived      NotificationType = "REQUEST_RECEIVED"
	NotificationNewFollower          NotificationType = "NEW_FOLLOWER"
	NotificationNewRating            NotificationType = "NEW_RATING"
	NotificationFollowedOrgPostedOrg NotificationType = "FOLLOWED_ORG_POSTED_ORG"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationRequestSent, NotificationRequestApproved, NotificationRequestRejected,
		NotificationFollowedOrgPosted, NotificationRequestReceived, NotificationNewFollower,
		NotificationNewRating, NotificationFollowedOrgPostedOrg:
		return true
	}
	return false
}

type Notification struct {
	Entity
	UserID                string           `gorm:"type:varchar(128);index;not null" json:"user_id"`
	UserType              UserType         `gorm:"type:varchar(32);not null" json:"user_type"`
	Type                  NotificationType `gorm:"type:varchar(64);not null" json:"type"`
	Title                 string           `gorm:"type:text" json:"title"`
	Message               string           `gorm:"type:text" json:"message"`
	IsRead                bool             `gorm:"not null;default:false" json:"is_read"`
	RelatedPostID         string           `gorm:"type:varchar(128)" json:"related_post_id,omitempty"`
	RelatedRequestID      string           `gorm:"type:varchar(128)" json:"related_request_id,omitempty"`
	RelatedOrganizationID string           `gorm:"type:varchar(128)" json:"related_organization_id,omitempty"`
	RelatedVolunteerID    string           `gorm:"type:varchar(128)" json:"related_volunteer_id,omitempty"`
}

func (Notification) TableName() string {
	return CollectionNotifications
}

// RelatedCount returns how many related entity ids are populated.
func (n Notification) RelatedCount() int {
	count := 0
	for _, id := range []string{n.RelatedPostID, n.RelatedRequestID, n.RelatedOrganizationID, n.RelatedVolunteerID} {
		if id != "" {
			count++
		}
	}
	return count
}
