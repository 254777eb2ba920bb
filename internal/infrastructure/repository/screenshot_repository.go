package repository

import (
	"github.com/pressplay/gamestore/internal/domain"

	"gorm.io/gorm"
)

// ScreenshotRepository implements domain.ScreenshotRepository
type ScreenshotRepository struct {
	db *gorm.DB
}

// NewScreenshotRepository creates a new screenshot repository
func NewScreenshotRepository(db *gorm.DB) domain.ScreenshotRepository {
	return &ScreenshotRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *ScreenshotRepository) WithTransaction(tx *gorm.DB) domain.ScreenshotRepository {
	return &ScreenshotRepository{db: tx}
}

// ListByGame retrieves screenshots for a game in insertion order
func (r *ScreenshotRepository) ListByGame(gameID int64) ([]*domain.Screenshot, error) {
	var screenshots []*domain.Screenshot
	if err := r.db.Where("game_id = ?", gameID).Order("id ASC").Find(&screenshots).Error; err != nil {
		return nil, err
	}
	return screenshots, nil
}

// Create creates a new screenshot
func (r *ScreenshotRepository) Create(screenshot *domain.Screenshot) error {
	return r.db.Create(screenshot).Error
}

// Delete removes a screenshot row
func (r *ScreenshotRepository) Delete(id int64) error {
	return r.db.Delete(&domain.Screenshot{}, id).Error
}

// DeleteByGame removes all screenshots of a game
func (r *ScreenshotRepository) DeleteByGame(gameID int64) error {
	return r.db.Where("game_id = ?", gameID).Delete(&domain.Screenshot{}).Error
}
