package services

import (
	"errors"
	"strings"

	"neighborhood-stories/models"
	"neighborhood-stories/repositories"

	"gorm.io/gorm"
)

// DefaultMeetupThreshold is the number of interest expressions after which a
// story counts as meetup-ready.
const DefaultMeetupThreshold = 3

type InterestService interface {
	ExpressInterest(storyID uint, contact models.ContactInfo) (*models.InterestResult, error)
	ExpressInterestBatch(req models.BatchInterestRequest) []models.BatchInterestResult
}

type interestService struct {
	storyRepo    repositories.StoryRepository
	interestRepo repositories.InterestRepository
	threshold    int
}

func NewInterestService(storyRepo repositories.StoryRepository, interestRepo repositories.InterestRepository, threshold int) InterestService {
	if threshold < 1 {
		threshold = DefaultMeetupThreshold
	}
	return &interestService{
		storyRepo:    storyRepo,
		interestRepo: interestRepo,
		threshold:    threshold,
	}
}

// ExpressInterest records one reader's interest in an approved story. The
// counter bump happens in a single store-side increment, so simultaneous
// expressions all land.
func (s *interestService) ExpressInterest(storyID uint, contact models.ContactInfo) (*models.InterestResult, error) {
	cleaned, err := validateContact(contact)
	if err != nil {
		return nil, err
	}

	count, err := s.storyRepo.IncrementInterested(storyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.classifyMiss(storyID)
		}
		return nil, models.ErrorInternalServer{Message: "failed to record interest", Err: err}
	}

	interest := &models.Interest{
		StoryID: storyID,
		Name:    cleaned.Name,
		Email:   cleaned.Email,
		Phone:   cleaned.Phone,
	}
	if err := s.interestRepo.Create(interest); err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to record interest contact", Err: err}
	}

	return &models.InterestResult{
		StoryID:          storyID,
		NewCount:         count,
		ThresholdReached: count >= s.threshold,
	}, nil
}

// ExpressInterestBatch treats every story independently; one story having
// slipped out of approved never aborts the rest.
func (s *interestService) ExpressInterestBatch(req models.BatchInterestRequest) []models.BatchInterestResult {
	results := make([]models.BatchInterestResult, 0, len(req.StoryIDs))

	for _, storyID := range req.StoryIDs {
		result, err := s.ExpressInterest(storyID, req.ContactInfo)
		if err != nil {
			results = append(results, models.BatchInterestResult{
				StoryID: storyID,
				Error:   err.Error(),
			})
			continue
		}
		results = append(results, models.BatchInterestResult{
			StoryID:          result.StoryID,
			NewCount:         result.NewCount,
			ThresholdReached: result.ThresholdReached,
		})
	}

	return results
}

// classifyMiss turns a zero-row increment into the right error: the story is
// either gone or not approved.
func (s *interestService) classifyMiss(storyID uint) error {
	story, err := s.storyRepo.GetByID(storyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "story not found"}
		}
		return models.ErrorInternalServer{Message: "failed to load story", Err: err}
	}
	return models.ErrorValidation{Message: "story is not approved, status: " + string(story.Status)}
}

func validateContact(contact models.ContactInfo) (models.ContactInfo, error) {
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Email = strings.TrimSpace(contact.Email)
	contact.Phone = strings.TrimSpace(contact.Phone)

	if contact.Name == "" {
		return contact, models.ErrorValidation{Message: "name is required"}
	}

	hasEmail := contact.Email != ""
	hasPhone := contact.Phone != ""

	switch {
	case !hasEmail && !hasPhone:
		return contact, models.ErrorValidation{Message: "an email address or phone number is required"}
	case hasEmail && hasPhone:
		return contact, models.ErrorValidation{Message: "provide either an email address or a phone number, not both"}
	case hasEmail:
		if !validEmail(contact.Email) {
			return contact, models.ErrorValidation{Message: "email address is not valid"}
		}
	default:
		if !validPhone(contact.Phone) {
			return contact, models.ErrorValidation{Message: "phone number is not valid"}
		}
	}

	return contact, nil
}
