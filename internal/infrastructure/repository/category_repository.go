package repository

import (
	"errors"

	"github.com/pressplay/gamestore/internal/domain"

	"gorm.io/gorm"
)

// CategoryRepository implements domain.CategoryRepository
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(id int64) (*domain.Category, error) {
	var category domain.Category
	result := r.db.Where("id = ?", id).First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &category, nil
}

// GetByName retrieves a category by its unique name
func (r *CategoryRepository) GetByName(name string) (*domain.Category, error) {
	var category domain.Category
	result := r.db.Where("name = ?", name).First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &category, nil
}

// Create creates a new category
func (r *CategoryRepository) Create(category *domain.Category) error {
	return r.db.Create(category).Error
}

// Update updates an existing category
func (r *CategoryRepository) Update(category *domain.Category) error {
	return r.db.Save(category).Error
}

// Delete removes a category row
func (r *CategoryRepository) Delete(id int64) error {
	return r.db.Delete(&domain.Category{}, id).Error
}

// List retrieves all categories ordered by name
func (r *CategoryRepository) List() ([]*domain.Category, error) {
	var categories []*domain.Category
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CountGames returns how many games reference the category
func (r *CategoryRepository) CountGames(categoryID int64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Game{}).Where("fk_category = ?", categoryID).Count(&count).Error
	return count, err
}

// Count returns the total number of categories
func (r *CategoryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Category{}).Count(&count).Error
	return count, err
}
