package models

type SubmitStoryRequest struct {
	Title                    string        `json:"title" binding:"required,min=1,max=255"`
	Excerpt                  string        `json:"excerpt"`
	Content                  string        `json:"content" binding:"required"`
	Author                   string        `json:"author"`
	Neighborhood             string        `json:"neighborhood"`
	Language                 string        `json:"language" binding:"required"`
	TranslatorAvailable      bool          `json:"translator_available"`
	TranslatorLanguage       string        `json:"translator_language"`
	IsAnonymous              bool          `json:"is_anonymous"`
	WantsMeetupNotifications bool          `json:"wants_meetup_notifications"`
	ContactMethod            ContactMethod `json:"contact_method"`
	Email                    string        `json:"email"`
	Phone                    string        `json:"phone"`
}

type UpdateStoryStatusRequest struct {
	ID     uint        `json:"id" binding:"required"`
	Status StoryStatus `json:"status" binding:"required"`
}

// UpdateStoryRequest is a partial content edit; nil fields stay untouched.
// Status, approval time and the counters are not patchable here.
type UpdateStoryRequest struct {
	Title               *string `json:"title"`
	Excerpt             *string `json:"excerpt"`
	Content             *string `json:"content"`
	Author              *string `json:"author"`
	Neighborhood        *string `json:"neighborhood"`
	Language            *string `json:"language"`
	TranslatorAvailable *bool   `json:"translator_available"`
	TranslatorLanguage  *string `json:"translator_language"`
}

type VerifyPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

type VerifyPasswordResponse struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	Error           string `json:"error,omitempty"`
}

// ContactInfo identifies who to notify when a meetup comes together.
// Exactly one of Email or Phone must be set.
type ContactInfo struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ExpressInterestRequest struct {
	ContactInfo
}

type BatchInterestRequest struct {
	StoryIDs []uint `json:"story_ids" binding:"required,min=1"`
	ContactInfo
}

type InterestResult struct {
	StoryID          uint `json:"story_id"`
	NewCount         int  `json:"interested"`
	ThresholdReached bool `json:"threshold_reached"`
}

// BatchInterestResult reports one story's outcome inside a batch; each entry
// succeeds or fails on its own.
type BatchInterestResult struct {
	StoryID          uint   `json:"story_id"`
	NewCount         int    `json:"interested,omitempty"`
	ThresholdReached bool   `json:"threshold_reached"`
	Error            string `json:"error,omitempty"`
}

type StoryListParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=12"`
}
