package services

import (
	"errors"
	"strings"

	"neighborhood-stories/models"
	"neighborhood-stories/repositories"

	"gorm.io/gorm"
)

type StoryService interface {
	Submit(req models.SubmitStoryRequest) (*models.Story, error)
	GetPublic(id uint) (*models.PublicStory, error)
	ListPublic(params models.StoryListParams) ([]models.PublicStory, int64, error)
	Like(id uint) error
	Respond(id uint) error
}

type storyService struct {
	storyRepo repositories.StoryRepository
}

func NewStoryService(storyRepo repositories.StoryRepository) StoryService {
	return &storyService{storyRepo: storyRepo}
}

// Submit validates a draft and stores it. Every submission enters the
// moderation queue as pending; nothing a submitter sends can influence
// status, approval time or the engagement counters.
func (s *storyService) Submit(req models.SubmitStoryRequest) (*models.Story, error) {
	story, err := buildStory(req)
	if err != nil {
		return nil, err
	}

	if err := s.storyRepo.Create(story); err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to store story", Err: err}
	}

	return story, nil
}

func buildStory(req models.SubmitStoryRequest) (*models.Story, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	author := strings.TrimSpace(req.Author)
	language := strings.TrimSpace(req.Language)

	if title == "" {
		return nil, models.ErrorValidation{Message: "title is required"}
	}
	if content == "" {
		return nil, models.ErrorValidation{Message: "content is required"}
	}
	if language == "" {
		return nil, models.ErrorValidation{Message: "language is required"}
	}
	if author == "" && !req.IsAnonymous {
		return nil, models.ErrorValidation{Message: "author name is required unless the story is anonymous"}
	}

	translatorLanguage := strings.TrimSpace(req.TranslatorLanguage)
	if req.TranslatorAvailable {
		if translatorLanguage == "" {
			return nil, models.ErrorValidation{Message: "translator language is required when a translator is available"}
		}
		if strings.EqualFold(translatorLanguage, language) {
			return nil, models.ErrorValidation{Message: "translator language must differ from the story language"}
		}
	} else {
		translatorLanguage = ""
	}

	wantsNotifications := req.WantsMeetupNotifications
	contactMethod := req.ContactMethod
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)

	// Anonymous authors have no contact path; their notification preference
	// is void no matter what the form sent.
	if req.IsAnonymous {
		wantsNotifications = false
	}

	if wantsNotifications {
		switch contactMethod {
		case models.ContactEmail:
			if email == "" {
				return nil, models.ErrorValidation{Message: "an email address is required for meetup notifications"}
			}
			if !validEmail(email) {
				return nil, models.ErrorValidation{Message: "email address is not valid"}
			}
			phone = ""
		case models.ContactPhone:
			if phone == "" {
				return nil, models.ErrorValidation{Message: "a phone number is required for meetup notifications"}
			}
			if !validPhone(phone) {
				return nil, models.ErrorValidation{Message: "phone number is not valid"}
			}
			email = ""
		default:
			return nil, models.ErrorValidation{Message: "a contact method is required for meetup notifications"}
		}
	} else {
		contactMethod = ""
		email = ""
		phone = ""
	}

	excerpt := strings.TrimSpace(req.Excerpt)
	if excerpt == "" {
		excerpt = content
	}

	return &models.Story{
		Title:                    title,
		Excerpt:                  excerpt,
		Content:                  content,
		Author:                   author,
		Neighborhood:             strings.TrimSpace(req.Neighborhood),
		Language:                 language,
		TranslatorAvailable:      req.TranslatorAvailable,
		TranslatorLanguage:       translatorLanguage,
		IsAnonymous:              req.IsAnonymous,
		WantsMeetupNotifications: wantsNotifications,
		ContactMethod:            contactMethod,
		Email:                    email,
		Phone:                    phone,
		Status:                   models.StatusPending,
		ApprovedAt:               nil,
		Interested:               0,
		Likes:                    0,
		Responses:                0,
	}, nil
}

// GetPublic returns the redacted view of an approved story. Anything not
// approved does not exist as far as readers are concerned.
func (s *storyService) GetPublic(id uint) (*models.PublicStory, error) {
	story, err := s.storyRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "story not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load story", Err: err}
	}

	if story.Status != models.StatusApproved {
		return nil, models.ErrorNotFound{Message: "story not found"}
	}

	public := story.Public()
	return &public, nil
}

func (s *storyService) ListPublic(params models.StoryListParams) ([]models.PublicStory, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 12
	}

	stories, total, err := s.storyRepo.ListByStatus(models.StatusApproved, params.Page, params.Limit)
	if err != nil {
		return nil, 0, models.ErrorInternalServer{Message: "failed to list stories", Err: err}
	}

	public := make([]models.PublicStory, 0, len(stories))
	for i := range stories {
		public = append(public, stories[i].Public())
	}

	return public, total, nil
}

func (s *storyService) Like(id uint) error {
	return s.incrementCounter(id, "likes")
}

func (s *storyService) Respond(id uint) error {
	return s.incrementCounter(id, "responses")
}

func (s *storyService) incrementCounter(id uint, counter string) error {
	rows, err := s.storyRepo.IncrementCounter(id, counter)
	if err != nil {
		return models.ErrorInternalServer{Message: "failed to update " + counter, Err: err}
	}
	if rows == 0 {
		return models.ErrorNotFound{Message: "story not found"}
	}
	return nil
}
