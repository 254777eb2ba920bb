package domain

import (
	"time"

	"gorm.io/gorm"
)

// LibraryEntry is the ownership record. Presence of a row is the sole
// source of truth for "user owns game".
type LibraryEntry struct {
	ID          int64     `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	UserID      int64     `json:"user_id" gorm:"uniqueIndex:idx_library_user_game;not null;type:bigint"`
	GameID      int64     `json:"game_id" gorm:"uniqueIndex:idx_library_user_game;not null;type:bigint"`
	PurchasedAt time.Time `json:"purchased_at" gorm:"not null"`

	Game Game `json:"game" gorm:"foreignKey:GameID"`
}

// TableName specifies the table name for LibraryEntry
func (l LibraryEntry) TableName() string {
	return "library"
}

// CartItem is a transient pre-purchase selection. Prices are never
// snapshotted; they are read live from the game at render and checkout.
type CartItem struct {
	ID     int64 `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	UserID int64 `json:"user_id" gorm:"uniqueIndex:idx_cart_user_game;not null;type:bigint"`
	GameID int64 `json:"game_id" gorm:"uniqueIndex:idx_cart_user_game;not null;type:bigint"`

	Game Game `json:"game" gorm:"foreignKey:GameID"`
}

// TableName specifies the table name for CartItem
func (c CartItem) TableName() string {
	return "shopping_carts"
}

// WishlistItem orders a user's wishlist by rank. Ranks only grow; a freed
// rank is never reused.
type WishlistItem struct {
	ID      int64     `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	UserID  int64     `json:"user_id" gorm:"uniqueIndex:idx_wishlist_user_game;not null;type:bigint"`
	GameID  int64     `json:"game_id" gorm:"uniqueIndex:idx_wishlist_user_game;not null;type:bigint"`
	Rank    int       `json:"rank" gorm:"not null"`
	AddedAt time.Time `json:"added_at" gorm:"not null"`

	Game Game `json:"game" gorm:"foreignKey:GameID"`
}

// TableName specifies the table name for WishlistItem
func (w WishlistItem) TableName() string {
	return "wishlists"
}

// Review is a user's verdict on an owned game, one per (user, game)
type Review struct {
	ID          int64     `json:"review_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	UserID      int64     `json:"user_id" gorm:"uniqueIndex:idx_review_user_game;not null;type:bigint"`
	GameID      int64     `json:"game_id" gorm:"uniqueIndex:idx_review_user_game;not null;type:bigint"`
	Text        string    `json:"text" gorm:"type:text;not null"`
	Recommended bool      `json:"recommended" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for Review
func (r Review) TableName() string {
	return "reviews"
}

// ReviewStats aggregates reviews for a game, counting only reviews whose
// author is not currently banned.
type ReviewStats struct {
	Total              int64   `json:"total"`
	Recommended        int64   `json:"recommended"`
	PercentRecommended float64 `json:"percent_recommended"`
}

// CoinTransactionType classifies a ledger entry
type CoinTransactionType string

const (
	CoinTransactionTypeTopUp    CoinTransactionType = "topup"
	CoinTransactionTypePurchase CoinTransactionType = "purchase"
)

// CoinTransaction is an audit row written for every balance mutation
type CoinTransaction struct {
	ID         int64               `json:"transaction_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	UserID     int64               `json:"user_id" gorm:"index;not null;type:bigint"`
	Type       CoinTransactionType `json:"type" gorm:"type:varchar(16);not null"`
	Amount     float64             `json:"amount" gorm:"type:numeric(20,2);not null"`
	OldBalance float64             `json:"old_balance" gorm:"type:numeric(20,2);not null"`
	NewBalance float64             `json:"new_balance" gorm:"type:numeric(20,2);not null"`
	GameID     *int64              `json:"game_id,omitempty" gorm:"type:bigint"`
	CreatedAt  time.Time           `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for CoinTransaction
func (c CoinTransaction) TableName() string {
	return "coin_transactions"
}

// LibraryRepository defines the interface for ownership data
type LibraryRepository interface {
	Exists(userID, gameID int64) (bool, error)
	Create(entry *LibraryEntry) error
	ListByUser(userID int64) ([]*LibraryEntry, error)
	DeleteByUser(userID int64) error
	DeleteByGame(gameID int64) error
	Count() (int64, error)
	WithTransaction(tx *gorm.DB) LibraryRepository
}

// CartRepository defines the interface for shopping cart data
type CartRepository interface {
	Get(userID, gameID int64) (*CartItem, error)
	Create(item *CartItem) error
	Delete(userID, gameID int64) error
	ListByUser(userID int64) ([]*CartItem, error)
	CountByUser(userID int64) (int64, error)
	DeleteByUser(userID int64) error
	DeleteByGame(gameID int64) error
	WithTransaction(tx *gorm.DB) CartRepository
}

// WishlistRepository defines the interface for wishlist data
type WishlistRepository interface {
	Get(userID, gameID int64) (*WishlistItem, error)
	NextRank(userID int64) (int, error)
	Create(item *WishlistItem) error
	Delete(userID, gameID int64) error
	ListByUser(userID int64) ([]*WishlistItem, error)
	DeleteByUser(userID int64) error
	DeleteByGame(gameID int64) error
	WithTransaction(tx *gorm.DB) WishlistRepository
}

// ReviewRepository defines the interface for review data
type ReviewRepository interface {
	GetByID(id int64) (*Review, error)
	GetByUserAndGame(userID, gameID int64) (*Review, error)
	Create(review *Review) error
	Delete(id int64) error
	ListByGame(gameID int64) ([]*Review, error)
	Stats(gameID int64) (*ReviewStats, error)
	DeleteByUser(userID int64) error
	DeleteByGame(gameID int64) error
	Count() (int64, error)
	WithTransaction(tx *gorm.DB) ReviewRepository
}

// LedgerRepository defines the interface for coin transaction data
type LedgerRepository interface {
	Create(tx *CoinTransaction) error
	ListByUser(userID int64, limit, offset int) ([]*CoinTransaction, error)
	Turnover() (float64, error)
	WithTransaction(tx *gorm.DB) LedgerRepository
}

// StoreUseCase defines the interface for cart, wishlist, purchase and
// review business logic
type StoreUseCase interface {
	AddToCart(userID, gameID int64) error
	RemoveFromCart(userID, gameID int64) error
	GetCart(userID int64) ([]*CartItem, float64, error)
	CartCount(userID int64) (int64, error)
	AddToWishlist(userID, gameID int64) (*WishlistItem, error)
	RemoveFromWishlist(userID, gameID int64) error
	GetWishlist(userID int64) ([]*WishlistItem, error)
	Purchase(userID, gameID int64) (*LibraryEntry, error)
	PurchaseCart(userID int64) ([]*LibraryEntry, error)
	GetLibrary(userID int64) ([]*LibraryEntry, error)
	PostReview(userID, gameID int64, text string, recommended bool) (*Review, error)
	DeleteReview(userID, reviewID int64, isAdmin bool) error
	GameReviews(gameID int64) ([]*Review, error)
	GameReviewStats(gameID int64) (*ReviewStats, error)
}
