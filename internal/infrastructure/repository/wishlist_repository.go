package repository

import (
	"errors"

	"github.com/pressplay/gamestore/internal/domain"

	"gorm.io/gorm"
)

// WishlistRepository implements domain.WishlistRepository
type WishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository creates a new wishlist repository
func NewWishlistRepository(db *gorm.DB) domain.WishlistRepository {
	return &WishlistRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *WishlistRepository) WithTransaction(tx *gorm.DB) domain.WishlistRepository {
	return &WishlistRepository{db: tx}
}

// Get retrieves a wishlist row for the (user, game) pair
func (r *WishlistRepository) Get(userID, gameID int64) (*domain.WishlistItem, error) {
	var item domain.WishlistItem
	result := r.db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &item, nil
}

// NextRank burns and returns the next rank for a user. The counter lives
// on the user row so ranks of removed entries are never reused.
func (r *WishlistRepository) NextRank(userID int64) (int, error) {
	var rank int
	err := r.db.Raw(
		"UPDATE users SET wishlist_rank = wishlist_rank + 1 WHERE id = ? RETURNING wishlist_rank",
		userID,
	).Scan(&rank).Error
	if err != nil {
		return 0, err
	}
	return rank, nil
}

// Create inserts a wishlist row
func (r *WishlistRepository) Create(item *domain.WishlistItem) error {
	return r.db.Create(item).Error
}

// Delete removes the wishlist row for the (user, game) pair, no-op if absent
func (r *WishlistRepository) Delete(userID, gameID int64) error {
	return r.db.Where("user_id = ? AND game_id = ?", userID, gameID).Delete(&domain.WishlistItem{}).Error
}

// ListByUser retrieves the wishlist ordered by rank
func (r *WishlistRepository) ListByUser(userID int64) ([]*domain.WishlistItem, error) {
	var items []*domain.WishlistItem
	err := r.db.
		Preload("Game").
		Preload("Game.Category").
		Preload("Game.Percentage").
		Where("user_id = ?", userID).
		Order("rank ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByUser removes all wishlist rows of a user
func (r *WishlistRepository) DeleteByUser(userID int64) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.WishlistItem{}).Error
}

// DeleteByGame removes all wishlist rows of a game
func (r *WishlistRepository) DeleteByGame(gameID int64) error {
	return r.db.Where("game_id = ?", gameID).Delete(&domain.WishlistItem{}).Error
}
