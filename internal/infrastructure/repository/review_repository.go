package repository

import (
	"errors"
	"time"

	"github.com/pressplay/gamestore/internal/domain"

	"gorm.io/gorm"
)

// ReviewRepository implements domain.ReviewRepository
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) domain.ReviewRepository {
	return &ReviewRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *ReviewRepository) WithTransaction(tx *gorm.DB) domain.ReviewRepository {
	return &ReviewRepository{db: tx}
}

// GetByID retrieves a review by ID
func (r *ReviewRepository) GetByID(id int64) (*domain.Review, error) {
	var review domain.Review
	result := r.db.Where("id = ?", id).First(&review)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &review, nil
}

// GetByUserAndGame retrieves the review for the (user, game) pair
func (r *ReviewRepository) GetByUserAndGame(userID, gameID int64) (*domain.Review, error) {
	var review domain.Review
	result := r.db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&review)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &review, nil
}

// Create inserts a review with a server-assigned timestamp
func (r *ReviewRepository) Create(review *domain.Review) error {
	review.CreatedAt = time.Now()
	return r.db.Create(review).Error
}

// Delete removes a review row
func (r *ReviewRepository) Delete(id int64) error {
	return r.db.Delete(&domain.Review{}, id).Error
}

// ListByGame retrieves reviews for a game, skipping reviews whose author
// is currently banned. Banned authors' reviews stay in the table.
func (r *ReviewRepository) ListByGame(gameID int64) ([]*domain.Review, error) {
	var reviews []*domain.Review
	err := r.db.
		Preload("User").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.game_id = ? AND users.banned = false", gameID).
		Order("reviews.created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Stats aggregates recommendation counts over non-banned authors
func (r *ReviewRepository) Stats(gameID int64) (*domain.ReviewStats, error) {
	var stats domain.ReviewStats
	err := r.db.Model(&domain.Review{}).
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.game_id = ? AND users.banned = false", gameID).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE reviews.recommended) AS recommended").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	if stats.Total > 0 {
		stats.PercentRecommended = float64(stats.Recommended) / float64(stats.Total) * 100
	}
	return &stats, nil
}

// DeleteByUser removes all reviews of a user
func (r *ReviewRepository) DeleteByUser(userID int64) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.Review{}).Error
}

// DeleteByGame removes all reviews of a game
func (r *ReviewRepository) DeleteByGame(gameID int64) error {
	return r.db.Where("game_id = ?", gameID).Delete(&domain.Review{}).Error
}

// Count returns the total number of reviews
func (r *ReviewRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Review{}).Count(&count).Error
	return count, err
}
