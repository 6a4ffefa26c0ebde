package repositories

import (
	"neighborhood-stories/models"

	"gorm.io/gorm"
)

type InterestRepository interface {
	Create(interest *models.Interest) error
	ListByStory(storyID uint) ([]models.Interest, error)
}

type interestRepository struct {
	db *gorm.DB
}

func NewInterestRepository(db *gorm.DB) InterestRepository {
	return &interestRepository{db: db}
}

func (r *interestRepository) Create(interest *models.Interest) error {
	return r.db.Create(interest).Error
}

func (r *interestRepository) ListByStory(storyID uint) ([]models.Interest, error) {
	var interests []models.Interest
	err := r.db.Where("story_id = ?", storyID).
		Order("created_at asc").
		Find(&interests).Error
	return interests, err
}
