package domain

import (
	"time"

	"gorm.io/gorm"
)

// FriendStatus is the relationship between two users as seen by one of them
type FriendStatus string

const (
	FriendStatusNone            FriendStatus = "none"
	FriendStatusPendingOutgoing FriendStatus = "pending_outgoing"
	FriendStatusPendingIncoming FriendStatus = "pending_incoming"
	FriendStatusFriends         FriendStatus = "friends"
)

// FriendLink is a directed edge between two users. A pending edge is an
// outstanding request from FromUserID to ToUserID; an accepted edge in
// either direction is a friendship.
type FriendLink struct {
	ID         int64     `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	FromUserID int64     `json:"from_user_id" gorm:"uniqueIndex:idx_friend_edge;not null;type:bigint"`
	ToUserID   int64     `json:"to_user_id" gorm:"uniqueIndex:idx_friend_edge;not null;type:bigint"`
	Accepted   bool      `json:"accepted" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for FriendLink
func (f FriendLink) TableName() string {
	return "friend_links"
}

// Friend pairs a user with the edge that links them to the viewer
type Friend struct {
	User  *User     `json:"user"`
	Since time.Time `json:"since"`
}

// FriendRepository defines the interface for friend edge data
type FriendRepository interface {
	GetEdge(fromUserID, toUserID int64) (*FriendLink, error)
	Create(link *FriendLink) error
	Update(link *FriendLink) error
	Delete(id int64) error
	DeleteBetween(userA, userB int64) error
	ListAccepted(userID int64) ([]*FriendLink, error)
	ListIncomingPending(userID int64) ([]*FriendLink, error)
	DeleteByUser(userID int64) error
	WithTransaction(tx *gorm.DB) FriendRepository
}

// SocialUseCase defines the interface for friend relationship logic
type SocialUseCase interface {
	SendRequest(fromUserID, toUserID int64) (FriendStatus, error)
	Accept(userID, fromUserID int64) error
	Reject(userID, fromUserID int64) error
	Remove(userID, otherUserID int64) error
	Status(viewerID, otherUserID int64) (FriendStatus, error)
	Friends(userID int64) ([]*Friend, error)
	PendingRequests(userID int64) ([]*User, error)
}
