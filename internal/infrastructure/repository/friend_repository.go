package repository

import (
	"errors"
	"time"

	"github.com/pressplay/gamestore/internal/domain"

	"gorm.io/gorm"
)

// FriendRepository implements domain.FriendRepository
type FriendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friend repository
func NewFriendRepository(db *gorm.DB) domain.FriendRepository {
	return &FriendRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *FriendRepository) WithTransaction(tx *gorm.DB) domain.FriendRepository {
	return &FriendRepository{db: tx}
}

// GetEdge retrieves the directed edge from one user to another
func (r *FriendRepository) GetEdge(fromUserID, toUserID int64) (*domain.FriendLink, error) {
	var link domain.FriendLink
	result := r.db.Where("from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).First(&link)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &link, nil
}

// Create inserts a friend edge
func (r *FriendRepository) Create(link *domain.FriendLink) error {
	link.CreatedAt = time.Now()
	return r.db.Create(link).Error
}

// Update updates a friend edge
func (r *FriendRepository) Update(link *domain.FriendLink) error {
	return r.db.Save(link).Error
}

// Delete removes a friend edge by ID
func (r *FriendRepository) Delete(id int64) error {
	return r.db.Delete(&domain.FriendLink{}, id).Error
}

// DeleteBetween removes any edge between two users regardless of direction
func (r *FriendRepository) DeleteBetween(userA, userB int64) error {
	return r.db.
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
			userA, userB, userB, userA).
		Delete(&domain.FriendLink{}).Error
}

// ListAccepted retrieves accepted edges touching the user, either direction
func (r *FriendRepository) ListAccepted(userID int64) ([]*domain.FriendLink, error) {
	var links []*domain.FriendLink
	err := r.db.
		Where("accepted = true AND (from_user_id = ? OR to_user_id = ?)", userID, userID).
		Order("created_at ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// ListIncomingPending retrieves pending requests addressed to the user
func (r *FriendRepository) ListIncomingPending(userID int64) ([]*domain.FriendLink, error) {
	var links []*domain.FriendLink
	err := r.db.
		Where("accepted = false AND to_user_id = ?", userID).
		Order("created_at ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// DeleteByUser removes all edges touching the user
func (r *FriendRepository) DeleteByUser(userID int64) error {
	return r.db.
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Delete(&domain.FriendLink{}).Error
}
