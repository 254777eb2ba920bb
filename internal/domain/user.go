package domain

import (
	"time"

	"gorm.io/gorm"
)

// CoinsPerUnit converts the stored currency balance to display coins.
// A balance of 10.00 shows as 1000 coins.
const CoinsPerUnit = 100

// User represents a registered store member
type User struct {
	ID        int64     `json:"user_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null;type:varchar(20)"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;type:varchar(128)"`
	Password  string    `json:"-" gorm:"not null;type:varchar(128)"`
	Avatar    string    `json:"avatar,omitempty" gorm:"type:varchar(256)"`
	Balance   float64   `json:"balance" gorm:"type:numeric(20,2);not null;default:0"`
	Admin     bool      `json:"admin" gorm:"not null;default:false"`
	Banned    bool      `json:"banned" gorm:"not null;default:false"`
	BanReason string    `json:"ban_reason,omitempty" gorm:"type:varchar(256)"`
	JoinDate  time.Time `json:"join_date" gorm:"column:joindate;not null"`
	UpdatedAt time.Time `json:"-" gorm:"not null"`

	// WishlistRank is a monotonic counter backing wishlist ordering;
	// freed ranks are never handed out again.
	WishlistRank int `json:"-" gorm:"not null;default:0"`
}

// TableName specifies the table name for User
func (u User) TableName() string {
	return "users"
}

// Coins returns the displayed coin amount for the stored balance.
func (u User) Coins() int64 {
	return int64(u.Balance*CoinsPerUnit + 0.5)
}

// UserFilter narrows admin user listings
type UserFilter struct {
	Username string
	Banned   *bool
	Limit    int
	Offset   int
}

// UserRepository defines the interface for user data
type UserRepository interface {
	GetByID(id int64) (*User, error)
	GetByIDForUpdate(id int64) (*User, error)
	GetByUsername(username string) (*User, error)
	GetByEmail(email string) (*User, error)
	Create(user *User) error
	Update(user *User) error
	UpdateBalance(userID int64, newBalance float64) error
	Delete(id int64) error
	List(filter UserFilter) ([]*User, error)
	Count() (int64, error)
	WithTransaction(tx *gorm.DB) UserRepository
}

// AccountUseCase defines the interface for account business logic
type AccountUseCase interface {
	Register(username, email, password string) (*User, error)
	Login(identifier, password string) (string, *User, error)
	GetUser(userID int64) (*User, error)
	UpdateProfile(userID int64, email, avatar string) (*User, error)
	ChangePassword(userID int64, oldPassword, newPassword string) error
	AddCoins(userID int64, coins int64) (*User, error)
	UpdateUser(userID int64, email, avatar string, admin *bool) (*User, error)
	Ban(userID int64, reason string) error
	Unban(userID int64) error
	DeleteUser(userID int64) error
	ListUsers(filter UserFilter) ([]*User, error)
}
