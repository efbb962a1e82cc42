// internal/model/organization.go
package model

type Organization struct {
	Entity
	Name               string     `gorm:"type:text;not null" json:"name"`
	Domain             string     `gorm:"type:text" json:"domain"`
	Location           string     `gorm:"type:text;index" json:"location"`
	Website            string     `gorm:"type:text" json:"website"`
	Email              string     `gorm:"type:varchar(320);uniqueIndex;not null" json:"email"`
	PasswordHash       string     `gorm:"type:text;not null" json:"password_hash,omitempty"`
	Phone              string     `gorm:"type:text" json:"phone"`
	RegistrationNumber string     `gorm:"type:text" json:"registration_number"`
	ProfilePictureURL  string     `gorm:"type:text" json:"profile_picture_url"`
	Description        string     `gorm:"type:text" json:"description"`
	MemberCount        int        `gorm:"not null;default:0" json:"member_count"`
	FoundedYear        int        `json:"founded_year"`
	IsApproved         bool       `gorm:"not null;default:false;index" json:"is_approved"`
	Rating             float64    `gorm:"not null;default:0" json:"rating"`
	RatingSum          float64    `gorm:"not null;default:0" json:"rating_sum"`
	RatingCount        int        `gorm:"not null;default:0" json:"rating_count"`
	FollowersCount     int        `gorm:"not null;default:0" json:"followers_count"`
	Tags               StringList `json:"tags"`
}

func (Organization) TableName() string {
	return CollectionOrganizations
}

// Sanitized returns a copy safe to hand to API clients.
func (o Organization) Sanitized() *Organization {
	o.PasswordHash = ""
	return &o
}

// AverageRating derives the mean score from the running sum and count.
func (o Organization) AverageRating() float64 {
	if o.RatingCount == 0 {
		return 0
	}
	return o.RatingSum / float64(o.RatingCount)
}
