package repository

import (
	"errors"
	"time"

	"github.com/pressplay/gamestore/internal/domain"

	"gorm.io/gorm"
)

// GameRepository implements domain.GameRepository
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) domain.GameRepository {
	return &GameRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *GameRepository) WithTransaction(tx *gorm.DB) domain.GameRepository {
	return &GameRepository{db: tx}
}

// GetByID retrieves a game with its category, percentage and screenshots
func (r *GameRepository) GetByID(id int64) (*domain.Game, error) {
	var game domain.Game
	result := r.db.
		Preload("Category").
		Preload("Percentage").
		Preload("Screenshots", func(db *gorm.DB) *gorm.DB {
			return db.Order("screenshots.id ASC")
		}).
		Where("id = ?", id).First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &game, nil
}

// GetByName retrieves a game by its unique name
func (r *GameRepository) GetByName(name string) (*domain.Game, error) {
	var game domain.Game
	result := r.db.Where("name = ?", name).First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &game, nil
}

// Create creates a new game
func (r *GameRepository) Create(game *domain.Game) error {
	game.CreatedAt = time.Now()
	game.UpdatedAt = time.Now()
	return r.db.Create(game).Error
}

// Update updates an existing game
func (r *GameRepository) Update(game *domain.Game) error {
	game.UpdatedAt = time.Now()
	return r.db.Save(game).Error
}

// Delete removes a game row
func (r *GameRepository) Delete(id int64) error {
	return r.db.Delete(&domain.Game{}, id).Error
}

// List retrieves games matching the filter with pagination
func (r *GameRepository) List(filter domain.GameFilter) ([]*domain.Game, error) {
	query := r.db.Model(&domain.Game{}).
		Preload("Category").
		Preload("Percentage")

	if filter.CategoryID != nil {
		query = query.Where("fk_category = ?", *filter.CategoryID)
	}
	if filter.OnSale != nil {
		query = query.Where("sale = ?", *filter.OnSale)
	}
	if filter.PriceMin != nil {
		query = query.Where("price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price <= ?", *filter.PriceMax)
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	sortBy := filter.SortBy
	switch sortBy {
	case domain.GameSortName, domain.GameSortPrice, domain.GameSortReleaseDate:
	default:
		sortBy = domain.GameSortName
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}
	query = query.Order(sortBy + " " + direction)

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var games []*domain.Game
	if err := query.Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// Count returns the total number of games
func (r *GameRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Game{}).Count(&count).Error
	return count, err
}
