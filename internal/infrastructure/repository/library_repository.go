package repository

import (
	"github.com/pressplay/gamestore/internal/domain"

	"gorm.io/gorm"
)

// LibraryRepository implements domain.LibraryRepository
type LibraryRepository struct {
	db *gorm.DB
}

// NewLibraryRepository creates a new library repository
func NewLibraryRepository(db *gorm.DB) domain.LibraryRepository {
	return &LibraryRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *LibraryRepository) WithTransaction(tx *gorm.DB) domain.LibraryRepository {
	return &LibraryRepository{db: tx}
}

// Exists reports whether the user owns the game
func (r *LibraryRepository) Exists(userID, gameID int64) (bool, error) {
	var count int64
	err := r.db.Model(&domain.LibraryEntry{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error
	return count > 0, err
}

// Create inserts an ownership row
func (r *LibraryRepository) Create(entry *domain.LibraryEntry) error {
	return r.db.Create(entry).Error
}

// ListByUser retrieves a user's library, newest purchase first
func (r *LibraryRepository) ListByUser(userID int64) ([]*domain.LibraryEntry, error) {
	var entries []*domain.LibraryEntry
	err := r.db.
		Preload("Game").
		Preload("Game.Category").
		Preload("Game.Percentage").
		Where("user_id = ?", userID).
		Order("purchased_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteByUser removes all ownership rows of a user
func (r *LibraryRepository) DeleteByUser(userID int64) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.LibraryEntry{}).Error
}

// DeleteByGame removes all ownership rows of a game
func (r *LibraryRepository) DeleteByGame(gameID int64) error {
	return r.db.Where("game_id = ?", gameID).Delete(&domain.LibraryEntry{}).Error
}

// Count returns the total number of purchases
func (r *LibraryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.LibraryEntry{}).Count(&count).Error
	return count, err
}
