package domain

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Category groups games for browsing and filtering
type Category struct {
	ID          int64  `json:"category_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Name        string `json:"name" gorm:"uniqueIndex;not null;type:varchar(64)"`
	Description string `json:"description" gorm:"type:varchar(512)"`
}

// TableName specifies the table name for Category
func (c Category) TableName() string {
	return "categories"
}

// Percentage is a reusable discount step referenced by games on sale
type Percentage struct {
	ID      int64 `json:"percentage_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Percent int   `json:"percent" gorm:"not null"`
}

// TableName specifies the table name for Percentage
func (p Percentage) TableName() string {
	return "percentages"
}

// Game represents a catalog entry
type Game struct {
	ID           int64     `json:"game_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Name         string    `json:"name" gorm:"uniqueIndex;not null;type:varchar(128)"`
	Description  string    `json:"description" gorm:"type:text"`
	CoverImage   string    `json:"cover_image" gorm:"type:varchar(256)"`
	Price        float64   `json:"price" gorm:"type:numeric(20,2);not null"`
	ReleaseDate  time.Time `json:"release_date"`
	Sale         bool      `json:"sale" gorm:"not null;default:false"`
	PercentageID *int64    `json:"-" gorm:"column:fk_percentage;type:bigint"`
	CategoryID   int64     `json:"-" gorm:"column:fk_category;not null;type:bigint"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt    time.Time `json:"-" gorm:"not null"`

	Category    Category     `json:"category" gorm:"foreignKey:CategoryID"`
	Percentage  *Percentage  `json:"percentage,omitempty" gorm:"foreignKey:PercentageID"`
	Screenshots []Screenshot `json:"screenshots,omitempty" gorm:"foreignKey:GameID"`
}

// TableName specifies the table name for Game
func (g Game) TableName() string {
	return "games"
}

// EffectivePrice returns the price actually charged. An active sale applies
// its percentage, clamped to [0,100], rounded to 2 decimals.
func (g Game) EffectivePrice() float64 {
	if !g.Sale || g.Percentage == nil {
		return g.Price
	}
	p := g.Percentage.Percent
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	discounted := g.Price * (1 - float64(p)/100)
	return math.Round(discounted*100) / 100
}

// Screenshot is an image link owned by a game, kept in insertion order
type Screenshot struct {
	ID     int64  `json:"screenshot_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	GameID int64  `json:"game_id" gorm:"index;not null;type:bigint"`
	Link   string `json:"link" gorm:"not null;type:varchar(256)"`
}

// TableName specifies the table name for Screenshot
func (s Screenshot) TableName() string {
	return "screenshots"
}

// Sortable columns for game listings
const (
	GameSortName        = "name"
	GameSortPrice       = "price"
	GameSortReleaseDate = "release_date"
)

// GameFilter narrows and orders catalog listings
type GameFilter struct {
	CategoryID *int64
	OnSale     *bool
	PriceMin   *float64
	PriceMax   *float64
	Search     string
	SortBy     string
	SortDesc   bool
	Limit      int
	Offset     int
}

// CategoryRepository defines the interface for category data
type CategoryRepository interface {
	GetByID(id int64) (*Category, error)
	GetByName(name string) (*Category, error)
	Create(category *Category) error
	Update(category *Category) error
	Delete(id int64) error
	List() ([]*Category, error)
	CountGames(categoryID int64) (int64, error)
	Count() (int64, error)
}

// GameRepository defines the interface for game data
type GameRepository interface {
	GetByID(id int64) (*Game, error)
	GetByName(name string) (*Game, error)
	Create(game *Game) error
	Update(game *Game) error
	Delete(id int64) error
	List(filter GameFilter) ([]*Game, error)
	Count() (int64, error)
	WithTransaction(tx *gorm.DB) GameRepository
}

// ScreenshotRepository defines the interface for screenshot data
type ScreenshotRepository interface {
	ListByGame(gameID int64) ([]*Screenshot, error)
	Create(screenshot *Screenshot) error
	Delete(id int64) error
	DeleteByGame(gameID int64) error
	WithTransaction(tx *gorm.DB) ScreenshotRepository
}

// PercentageRepository defines the interface for discount percentage data
type PercentageRepository interface {
	GetByID(id int64) (*Percentage, error)
	GetOrCreate(percent int) (*Percentage, error)
	List() ([]*Percentage, error)
}

// CatalogUseCase defines the interface for catalog business logic
type CatalogUseCase interface {
	GetGame(id int64) (*Game, error)
	ListGames(filter GameFilter) ([]*Game, error)
	CreateGame(game *Game) (*Game, error)
	UpdateGame(game *Game) (*Game, error)
	DeleteGame(id int64) error
	AddScreenshot(gameID int64, link string) (*Screenshot, error)
	DeleteScreenshot(id int64) error
	ListCategories() ([]*Category, error)
	CreateCategory(name, description string) (*Category, error)
	UpdateCategory(id int64, name, description string) (*Category, error)
	DeleteCategory(id int64) error
}
