package repository

import (
	"errors"

	"github.com/pressplay/gamestore/internal/domain"

	"gorm.io/gorm"
)

// CartRepository implements domain.CartRepository
type CartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) domain.CartRepository {
	return &CartRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *CartRepository) WithTransaction(tx *gorm.DB) domain.CartRepository {
	return &CartRepository{db: tx}
}

// Get retrieves a cart row for the (user, game) pair
func (r *CartRepository) Get(userID, gameID int64) (*domain.CartItem, error) {
	var item domain.CartItem
	result := r.db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &item, nil
}

// Create inserts a cart row
func (r *CartRepository) Create(item *domain.CartItem) error {
	return r.db.Create(item).Error
}

// Delete removes the cart row for the (user, game) pair, no-op if absent
func (r *CartRepository) Delete(userID, gameID int64) error {
	return r.db.Where("user_id = ? AND game_id = ?", userID, gameID).Delete(&domain.CartItem{}).Error
}

// ListByUser retrieves the cart contents with live game data
func (r *CartRepository) ListByUser(userID int64) ([]*domain.CartItem, error) {
	var items []*domain.CartItem
	err := r.db.
		Preload("Game").
		Preload("Game.Category").
		Preload("Game.Percentage").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CountByUser returns the number of cart rows for a user
func (r *CartRepository) CountByUser(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.CartItem{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// DeleteByUser removes all cart rows of a user
func (r *CartRepository) DeleteByUser(userID int64) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.CartItem{}).Error
}

// DeleteByGame removes all cart rows of a game
func (r *CartRepository) DeleteByGame(gameID int64) error {
	return r.db.Where("game_id = ?", gameID).Delete(&domain.CartItem{}).Error
}
