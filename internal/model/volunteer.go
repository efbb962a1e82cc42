package model

import "time"

type Volunteer struct {
	Entity
	Name              string     `gorm:"type:text;not null" json:"name"`
	Surname           string     `gorm:"type:text" json:"surname"`
	Email             string     `gorm:"type:varchar(320);uniqueIndex;not null" json:"email"`
	PasswordHash      string     `gorm:"type:text;not null" json:"password_hash,omitempty"`
	Phone             string     `gorm:"type:text" json:"phone"`
	Location          string     `gorm:"type:text;index" json:"location"`
	ProfilePictureURL string     `gorm:"type:text" json:"profile_picture_url"`
	Interests         StringList `json:"interests"`
	Skills            StringList `json:"skills"`
	Availability      string     `gorm:"type:text" json:"availability"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	Rating            float64    `gorm:"not null;default:0" json:"rating"`
	RatingCount       int        `gorm:"not null;default:0" json:"rating_count"`
}

func (Volunteer) TableName() string {
	return CollectionVolunteers
}

// Sanitized returns a copy safe to hand to API clients.
func (v Volunteer) Sanitized() *Volunteer {
	v.PasswordHash = ""
	return &v
}

// FullName joins name and surname.
func (v Volunteer) FullName() string {
	if v.Surname == "" {
		return v.Name
	}
	return v.Name + " " + v.Surname
}
