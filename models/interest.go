package models

import "time"

// Interest is one recorded interest expression. Rows are write-only through
// the public API; only the notification path reads them back.
type Interest struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	StoryID   uint      `json:"story_id" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func (Interest) TableName() string {
	return "story_interests"
}
