package models

import (
	"time"
)

type StoryStatus string

const (
	StatusPending  StoryStatus = "pending"
	StatusApproved StoryStatus = "approved"
	StatusRejected StoryStatus = "rejected"
	StatusArchived StoryStatus = "archived"
)

// ValidStatus reports whether s is one of the four known statuses.
func ValidStatus(s StoryStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusArchived:
		return true
	}
	return false
}

type ContactMethod string

const (
	ContactEmail ContactMethod = "email"
	ContactPhone ContactMethod = "phone"
)

type Story struct {
	ID                       uint          `json:"id" gorm:"primarykey"`
	Title                    string        `json:"title" gorm:"not null"`
	Excerpt                  string        `json:"excerpt"`
	Content                  string        `json:"content" gorm:"type:text;not null"`
	Author                   string        `json:"author"`
	Neighborhood             string        `json:"neighborhood"`
	Language                 string        `json:"language" gorm:"not null"`
	TranslatorAvailable      bool          `json:"translator_available" gorm:"default:false"`
	TranslatorLanguage       string        `json:"translator_language"`
	IsAnonymous              bool          `json:"is_anonymous" gorm:"default:false"`
	WantsMeetupNotifications bool          `json:"wants_meetup_notifications" gorm:"default:false"`
	ContactMethod            ContactMethod `json:"contact_method"`
	Email                    string        `json:"email"`
	Phone                    string        `json:"phone"`
	Status                   StoryStatus   `json:"status" gorm:"default:'pending';index"`
	ApprovedAt               *time.Time    `json:"approved_at"`
	Interested               int           `json:"interested" gorm:"default:0"`
	Likes                    int           `json:"likes" gorm:"default:0"`
	Responses                int           `json:"responses" gorm:"default:0"`
	CreatedAt                time.Time     `json:"created_at"`
	UpdatedAt                time.Time     `json:"updated_at"`
}

// PublicStory is the reader-facing view of a story. Contact fields are
// write-only for ordinary readers and are never part of this view; an
// anonymous author's identity is withheld entirely.
type PublicStory struct {
	ID                  uint        `json:"id"`
	Title               string      `json:"title"`
	Excerpt             string      `json:"excerpt"`
	Content             string      `json:"content"`
	Author              string      `json:"author"`
	Neighborhood        string      `json:"neighborhood"`
	Language            string      `json:"language"`
	TranslatorAvailable bool        `json:"translator_available"`
	TranslatorLanguage  string      `json:"translator_language"`
	IsAnonymous         bool        `json:"is_anonymous"`
	Status              StoryStatus `json:"status"`
	ApprovedAt          *time.Time  `json:"approved_at"`
	Interested          int         `json:"interested"`
	Likes               int         `json:"likes"`
	Responses           int         `json:"responses"`
	CreatedAt           time.Time   `json:"created_at"`
}

// Public returns the redacted view of the story.
func (s *Story) Public() PublicStory {
	p := PublicStory{
		ID:                  s.ID,
		Title:               s.Title,
		Excerpt:             s.Excerpt,
		Content:             s.Content,
		Author:              s.Author,
		Neighborhood:        s.Neighborhood,
		Language:            s.Language,
		TranslatorAvailable: s.TranslatorAvailable,
		TranslatorLanguage:  s.TranslatorLanguage,
		IsAnonymous:         s.IsAnonymous,
		Status:              s.Status,
		ApprovedAt:          s.ApprovedAt,
		Interested:          s.Interested,
		Likes:               s.Likes,
		Responses:           s.Responses,
		CreatedAt:           s.CreatedAt,
	}
	if s.IsAnonymous {
		p.Author = "Anonymous"
	}
	return p
}
