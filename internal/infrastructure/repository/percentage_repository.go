package repository

import (
	"errors"

	"github.com/pressplay/gamestore/internal/domain"

	"gorm.io/gorm"
)

// PercentageRepository implements domain.PercentageRepository
type PercentageRepository struct {
	db *gorm.DB
}

// NewPercentageRepository creates a new percentage repository
func NewPercentageRepository(db *gorm.DB) domain.PercentageRepository {
	return &PercentageRepository{db: db}
}

// GetByID retrieves a percentage by ID
func (r *PercentageRepository) GetByID(id int64) (*domain.Percentage, error) {
	var percentage domain.Percentage
	result := r.db.Where("id = ?", id).First(&percentage)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &percentage, nil
}

// GetOrCreate returns the row for the given percent, inserting it on first use
func (r *PercentageRepository) GetOrCreate(percent int) (*domain.Percentage, error) {
	var percentage domain.Percentage
	result := r.db.Where("percent = ?", percent).First(&percentage)
	if result.Error == nil {
		return &percentage, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	percentage = domain.Percentage{Percent: percent}
	if err := r.db.Create(&percentage).Error; err != nil {
		return nil, err
	}
	return &percentage, nil
}

// List retrieves all percentages
func (r *PercentageRepository) List() ([]*domain.Percentage, error) {
	var percentages []*domain.Percentage
	if err := r.db.Order("percent ASC").Find(&percentages).Error; err != nil {
		return nil, err
	}
	return percentages, nil
}
