package model

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryEvent       Category = "EVENT"
	CategoryAid         Category = "AID"
	CategoryEducation   Category = "EDUCATION"
	CategoryEnvironment Category = "ENVIRONMENT"
	CategoryHealth      Category = "HEALTH"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryEvent, CategoryAid, CategoryEducation, CategoryEnvironment, CategoryHealth:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityVeryHigh Priority = "VERY_HIGH"
)

// Rank orders priorities for sorting; unknown values rank lowest.
func (p Priority) Rank() int {
	switch p {
	case PriorityVeryHigh:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// OrDefault returns MEDIUM for an empty priority.
func (p Priority) OrDefault() Priority {
	if p == "" {
		return PriorityMedium
	}
	return p
}

type Post struct {
	Entity
	Title            string     `gorm:"type:text;not null" json:"title"`
	Description      string     `gorm:"type:text" json:"description"`
	ImageURL         string     `gorm:"type:text" json:"image_url"`
	Location         string     `gorm:"type:text;index" json:"location"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          time.Time  `json:"end_date"`
	VolunteersNeeded int        `gorm:"not null;default:0" json:"volunteers_needed"`
	Category         Category   `gorm:"type:varchar(32);not null" json:"category"`
	Priority         Priority   `gorm:"type:varchar(32);not null;default:'MEDIUM'" json:"priority"`
	Needs            StringList `json:"needs"`
	OrganizationID   string     `gorm:"type:varchar(128);index;not null" json:"organization_id"`

	Organization *Organization `gorm:"-" json:"organization,omitempty"`
}

func (Post) TableName() string {
	return CollectionPosts
}

var rejectedImageHosts = []string{
	"google.com/search",
	"google.com/imgres",
	"bing.com/images",
	"images.search.yahoo.com",
	"duckduckgo.com/?q",
}

// UsableImageURL reports whether an image URL points at an actual image
// rather than an inline data URI or a search results page.
func UsableImageURL(url string) bool {
	url = strings.TrimSpace(url)
	if url == "" || strings.HasPrefix(url, "data:") {
		return false
	}
	lower := strings.ToLower(url)
	for _, host := range rejectedImageHosts {
		if strings.Contains(lower, host) {
			return false
		}
	}
	return true
}
