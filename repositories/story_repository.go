package repositories

import (
	"time"

	"neighborhood-stories/models"

	"gorm.io/gorm"
)

type StoryRepository interface {
	Create(story *models.Story) error
	GetByID(id uint) (*models.Story, error)
	ListByStatus(status models.StoryStatus, page, limit int) ([]models.Story, int64, error)
	ListAll() ([]models.Story, error)
	Update(story *models.Story) error
	TransitionStatus(id uint, from, to models.StoryStatus) (int64, error)
	IncrementInterested(id uint) (int, error)
	IncrementCounter(id uint, counter string) (int64, error)
}

type storyRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(story *models.Story) error {
	return r.db.Create(story).Error
}

func (r *storyRepository) GetByID(id uint) (*models.Story, error) {
	var story models.Story
	err := r.db.First(&story, id).Error
	return &story, err
}

func (r *storyRepository) ListByStatus(status models.StoryStatus, page, limit int) ([]models.Story, int64, error) {
	var stories []models.Story
	var total int64

	query := r.db.Model(&models.Story{}).Where("status = ?", status)
	query.Count(&total)

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&stories).Error

	return stories, total, err
}

func (r *storyRepository) ListAll() ([]models.Story, error) {
	var stories []models.Story
	err := r.db.Order("created_at desc").Find(&stories).Error
	return stories, err
}

func (r *storyRepository) Update(story *models.Story) error {
	return r.db.Save(story).Error
}

// TransitionStatus applies a status change guarded by the expected current
// status. Zero affected rows means the guard failed (row missing or the
// status moved concurrently); the caller decides which. The first transition
// into approved stamps approved_at; later approvals keep the original stamp.
func (r *storyRepository) TransitionStatus(id uint, from, to models.StoryStatus) (int64, error) {
	updates := map[string]interface{}{"status": to}
	if to == models.StatusApproved {
		updates["approved_at"] = gorm.Expr("COALESCE(approved_at, ?)", time.Now().UTC())
	}

	res := r.db.Model(&models.Story{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)

	return res.RowsAffected, res.Error
}

// IncrementInterested bumps the interest counter in a single statement so
// concurrent expressions never lose updates. Only approved stories count;
// a zero-row update surfaces as ErrRecordNotFound for the service to refine.
func (r *storyRepository) IncrementInterested(id uint) (int, error) {
	var count int

	res := r.db.Raw(
		`UPDATE stories SET interested = interested + 1, updated_at = ? WHERE id = ? AND status = ? RETURNING interested`,
		time.Now().UTC(), id, models.StatusApproved,
	).Scan(&count)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	return count, nil
}

func (r *storyRepository) IncrementCounter(id uint, counter string) (int64, error) {
	if counter != "likes" && counter != "responses" {
		return 0, gorm.ErrInvalidField
	}

	res := r.db.Model(&models.Story{}).
		Where("id = ? AND status = ?", id, models.StatusApproved).
		UpdateColumn(counter, gorm.Expr(counter+" + 1"))

	return res.RowsAffected, res.Error
}
