package services

import (
	"sort"
	"sync"
	"time"

	"neighborhood-stories/models"

	"gorm.io/gorm"
)

// fakeStoryRepo is an in-memory StoryRepository with the same guard
// semantics as the SQL implementation: conditional transitions and
// single-step counter increments under one lock.
type fakeStoryRepo struct {
	mu      sync.Mutex
	seq     uint
	stories map[uint]*models.Story
}

func newFakeStoryRepo() *fakeStoryRepo {
	return &fakeStoryRepo{stories: make(map[uint]*models.Story)}
}

func (r *fakeStoryRepo) Create(story *models.Story) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	story.ID = r.seq
	story.CreatedAt = time.Now().UTC()
	story.UpdatedAt = story.CreatedAt

	stored := *story
	r.stories[story.ID] = &stored
	return nil
}

func (r *fakeStoryRepo) GetByID(id uint) (*models.Story, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	story, ok := r.stories[id]
	if !ok {
		return &models.Story{}, gorm.ErrRecordNotFound
	}
	copied := *story
	return &copied, nil
}

func (r *fakeStoryRepo) ListByStatus(status models.StoryStatus, page, limit int) ([]models.Story, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.Story
	for _, story := range r.stories {
		if story.Status == status {
			matched = append(matched, *story)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], total, nil
}

func (r *fakeStoryRepo) ListAll() ([]models.Story, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var all []models.Story
	for _, story := range r.stories {
		all = append(all, *story)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

func (r *fakeStoryRepo) Update(story *models.Story) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stories[story.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *story
	stored.UpdatedAt = time.Now().UTC()
	r.stories[story.ID] = &stored
	return nil
}

func (r *fakeStoryRepo) TransitionStatus(id uint, from, to models.StoryStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	story, ok := r.stories[id]
	if !ok || story.Status != from {
		return 0, nil
	}

	story.Status = to
	if to == models.StatusApproved && story.ApprovedAt == nil {
		now := time.Now().UTC()
		story.ApprovedAt = &now
	}
	story.UpdatedAt = time.Now().UTC()
	return 1, nil
}

func (r *fakeStoryRepo) IncrementInterested(id uint) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	story, ok := r.stories[id]
	if !ok || story.Status != models.StatusApproved {
		return 0, gorm.ErrRecordNotFound
	}

	story.Interested++
	story.UpdatedAt = time.Now().UTC()
	return story.Interested, nil
}

func (r *fakeStoryRepo) IncrementCounter(id uint, counter string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	story, ok := r.stories[id]
	if !ok || story.Status != models.StatusApproved {
		return 0, nil
	}

	switch counter {
	case "likes":
		story.Likes++
	case "responses":
		story.Responses++
	default:
		return 0, gorm.ErrInvalidField
	}
	story.UpdatedAt = time.Now().UTC()
	return 1, nil
}

type fakeInterestRepo struct {
	mu        sync.Mutex
	seq       uint
	interests []models.Interest
}

func newFakeInterestRepo() *fakeInterestRepo {
	return &fakeInterestRepo{}
}

func (r *fakeInterestRepo) Create(interest *models.Interest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	interest.ID = r.seq
	interest.CreatedAt = time.Now().UTC()
	r.interests = append(r.interests, *interest)
	return nil
}

func (r *fakeInterestRepo) ListByStory(storyID uint) ([]models.Interest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.Interest
	for _, interest := range r.interests {
		if interest.StoryID == storyID {
			matched = append(matched, interest)
		}
	}
	return matched, nil
}
