package services

import (
	"errors"
	"strings"

	"neighborhood-stories/models"
	"neighborhood-stories/repositories"

	"gorm.io/gorm"
)

type ModerationAction string

const (
	ActionApprove ModerationAction = "approve"
	ActionReject  ModerationAction = "reject"
	ActionArchive ModerationAction = "archive"
	ActionReopen  ModerationAction = "reopen"
)

// transitions is the complete set of legal moves. Archival requires prior
// approval; rejected and archived stories can only come back through pending.
var transitions = map[models.StoryStatus]map[ModerationAction]models.StoryStatus{
	models.StatusPending: {
		ActionApprove: models.StatusApproved,
		ActionReject:  models.StatusRejected,
	},
	models.StatusApproved: {
		ActionArchive: models.StatusArchived,
	},
	models.StatusRejected: {
		ActionReopen: models.StatusPending,
	},
	models.StatusArchived: {
		ActionReopen: models.StatusPending,
	},
}

// actionFor maps a requested target status onto the action that reaches it.
// The admin API speaks in target statuses, the transition table in actions.
func actionFor(target models.StoryStatus) ModerationAction {
	switch target {
	case models.StatusApproved:
		return ActionApprove
	case models.StatusRejected:
		return ActionReject
	case models.StatusArchived:
		return ActionArchive
	default:
		return ActionReopen
	}
}

type ModerationService interface {
	ListAll(credential string) ([]models.Story, error)
	UpdateStatus(credential string, id uint, target models.StoryStatus) (*models.Story, error)
	UpdateStory(credential string, id uint, patch models.UpdateStoryRequest) (*models.Story, error)
	ListInterests(credential string, id uint) ([]models.Interest, error)
	Approve(credential string, id uint) (*models.Story, error)
	Reject(credential string, id uint) (*models.Story, error)
	Archive(credential string, id uint) (*models.Story, error)
	Reopen(credential string, id uint) (*models.Story, error)
}

type moderationService struct {
	storyRepo    repositories.StoryRepository
	interestRepo repositories.InterestRepository
	verifier     AuthService
}

func NewModerationService(storyRepo repositories.StoryRepository, interestRepo repositories.InterestRepository, verifier AuthService) ModerationService {
	return &moderationService{
		storyRepo:    storyRepo,
		interestRepo: interestRepo,
		verifier:     verifier,
	}
}

func (s *moderationService) ListAll(credential string) ([]models.Story, error) {
	if !s.verifier.Verify(credential) {
		return nil, models.ErrorUnauthorized{}
	}

	stories, err := s.storyRepo.ListAll()
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to list stories", Err: err}
	}

	return stories, nil
}

func (s *moderationService) UpdateStatus(credential string, id uint, target models.StoryStatus) (*models.Story, error) {
	if !models.ValidStatus(target) {
		return nil, models.ErrorValidation{Message: "unknown status: " + string(target)}
	}
	return s.apply(credential, id, actionFor(target))
}

// UpdateStory applies a content edit to a story. Only the narrative fields
// are patchable; the lifecycle fields and counters stay owned by the state
// machine and the interest aggregator.
func (s *moderationService) UpdateStory(credential string, id uint, patch models.UpdateStoryRequest) (*models.Story, error) {
	if !s.verifier.Verify(credential) {
		return nil, models.ErrorUnauthorized{}
	}

	story, err := s.storyRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "story not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load story", Err: err}
	}

	if err := applyStoryPatch(story, patch); err != nil {
		return nil, err
	}

	if err := s.storyRepo.Update(story); err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to update story", Err: err}
	}

	return story, nil
}

func applyStoryPatch(story *models.Story, patch models.UpdateStoryRequest) error {
	if patch.Title != nil {
		story.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Excerpt != nil {
		story.Excerpt = strings.TrimSpace(*patch.Excerpt)
	}
	if patch.Content != nil {
		story.Content = strings.TrimSpace(*patch.Content)
	}
	if patch.Author != nil {
		story.Author = strings.TrimSpace(*patch.Author)
	}
	if patch.Neighborhood != nil {
		story.Neighborhood = strings.TrimSpace(*patch.Neighborhood)
	}
	if patch.Language != nil {
		story.Language = strings.TrimSpace(*patch.Language)
	}
	if patch.TranslatorAvailable != nil {
		story.TranslatorAvailable = *patch.TranslatorAvailable
	}
	if patch.TranslatorLanguage != nil {
		story.TranslatorLanguage = strings.TrimSpace(*patch.TranslatorLanguage)
	}

	// The patched record has to satisfy the same invariants a fresh
	// submission does.
	if story.Title == "" {
		return models.ErrorValidation{Message: "title is required"}
	}
	if story.Content == "" {
		return models.ErrorValidation{Message: "content is required"}
	}
	if story.Language == "" {
		return models.ErrorValidation{Message: "language is required"}
	}
	if story.Author == "" && !story.IsAnonymous {
		return models.ErrorValidation{Message: "author name is required unless the story is anonymous"}
	}
	if story.TranslatorAvailable {
		if story.TranslatorLanguage == "" {
			return models.ErrorValidation{Message: "translator language is required when a translator is available"}
		}
		if strings.EqualFold(story.TranslatorLanguage, story.Language) {
			return models.ErrorValidation{Message: "translator language must differ from the story language"}
		}
	} else {
		story.TranslatorLanguage = ""
	}

	return nil
}

// ListInterests returns the recorded interest signups for a story, the read
// side of the meetup notification path.
func (s *moderationService) ListInterests(credential string, id uint) ([]models.Interest, error) {
	if !s.verifier.Verify(credential) {
		return nil, models.ErrorUnauthorized{}
	}

	if _, err := s.storyRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "story not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load story", Err: err}
	}

	interests, err := s.interestRepo.ListByStory(id)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to list interests", Err: err}
	}

	return interests, nil
}

func (s *moderationService) Approve(credential string, id uint) (*models.Story, error) {
	return s.apply(credential, id, ActionApprove)
}

func (s *moderationService) Reject(credential string, id uint) (*models.Story, error) {
	return s.apply(credential, id, ActionReject)
}

func (s *moderationService) Archive(credential string, id uint) (*models.Story, error) {
	return s.apply(credential, id, ActionArchive)
}

func (s *moderationService) Reopen(credential string, id uint) (*models.Story, error) {
	return s.apply(credential, id, ActionReopen)
}

// apply runs one moderation action. The store-side update is guarded by the
// status the story had when we read it, so a concurrent transition makes the
// update a no-op and surfaces as an invalid transition instead of silently
// clobbering the newer state.
func (s *moderationService) apply(credential string, id uint, action ModerationAction) (*models.Story, error) {
	if !s.verifier.Verify(credential) {
		return nil, models.ErrorUnauthorized{}
	}

	story, err := s.storyRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "story not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load story", Err: err}
	}

	target, ok := transitions[story.Status][action]
	if !ok {
		return nil, models.ErrorInvalidTransition{From: story.Status, Action: string(action)}
	}

	rows, err := s.storyRepo.TransitionStatus(id, story.Status, target)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to update status", Err: err}
	}
	if rows == 0 {
		current, err := s.storyRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrorNotFound{Message: "story not found"}
			}
			return nil, models.ErrorInternalServer{Message: "failed to load story", Err: err}
		}
		return nil, models.ErrorInvalidTransition{From: current.Status, Action: string(action)}
	}

	updated, err := s.storyRepo.GetByID(id)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to load story", Err: err}
	}

	return updated, nil
}
