package catalog

import (
	"github.com/pressplay/gamestore/internal/domain"
	"github.com/pressplay/gamestore/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CatalogUseCase implements domain.CatalogUseCase
type CatalogUseCase struct {
	gameRepo       domain.GameRepository
	categoryRepo   domain.CategoryRepository
	percentageRepo domain.PercentageRepository
	screenshotRepo domain.ScreenshotRepository
	cartRepo       domain.CartRepository
	wishlistRepo   domain.WishlistRepository
	libraryRepo    domain.LibraryRepository
	reviewRepo     domain.ReviewRepository
	db             *gorm.DB
	logger         *logger.Logger
}

// NewCatalogUseCase creates a new catalog use case
func NewCatalogUseCase(
	gameRepo domain.GameRepository,
	categoryRepo domain.CategoryRepository,
	percentageRepo domain.PercentageRepository,
	screenshotRepo domain.ScreenshotRepository,
	cartRepo domain.CartRepository,
	wishlistRepo domain.WishlistRepository,
	libraryRepo domain.LibraryRepository,
	reviewRepo domain.ReviewRepository,
	db *gorm.DB,
	logger *logger.Logger,
) domain.CatalogUseCase {
	return &CatalogUseCase{
		gameRepo:       gameRepo,
		categoryRepo:   categoryRepo,
		percentageRepo: percentageRepo,
		screenshotRepo: screenshotRepo,
		cartRepo:       cartRepo,
		wishlistRepo:   wishlistRepo,
		libraryRepo:    libraryRepo,
		reviewRepo:     reviewRepo,
		db:             db,
		logger:         logger,
	}
}

// GetGame retrieves a game with category, discount and screenshots
func (uc *CatalogUseCase) GetGame(id int64) (*domain.Game, error) {
	game, err := uc.gameRepo.GetByID(id)
	if err != nil {
		return nil, domain.NewDatabaseError("get game", err)
	}
	if game == nil {
		return nil, domain.NewNotFoundError("Game")
	}
	return game, nil
}

// ListGames retrieves games matching the filter
func (uc *CatalogUseCase) ListGames(filter domain.GameFilter) ([]*domain.Game, error) {
	games, err := uc.gameRepo.List(filter)
	if err != nil {
		return nil, domain.NewDatabaseError("list games", err)
	}
	return games, nil
}

func (uc *CatalogUseCase) validateGame(game *domain.Game) error {
	if game.Name == "" {
		return domain.NewValidationError("name", "is required")
	}
	if game.Price <= 0 {
		return domain.NewValidationError("price", "must be positive")
	}
	if game.Sale && game.PercentageID == nil {
		return domain.NewValidationError("percentage", "is required for a game on sale")
	}
	category, err := uc.categoryRepo.GetByID(game.CategoryID)
	if err != nil {
		return domain.NewDatabaseError("get category", err)
	}
	if category == nil {
		return domain.NewNotFoundError("Category")
	}
	if game.PercentageID != nil {
		percentage, err := uc.percentageRepo.GetByID(*game.PercentageID)
		if err != nil {
			return domain.NewDatabaseError("get percentage", err)
		}
		if percentage == nil {
			return domain.NewNotFoundError("Percentage")
		}
	}
	return nil
}

// resolvePercentage turns an inline discount into a shared percentage row.
// Percentages are deduplicated, so two games at 30% point at the same row.
func (uc *CatalogUseCase) resolvePercentage(game *domain.Game) error {
	if !game.Sale {
		game.PercentageID = nil
		game.Percentage = nil
		return nil
	}
	if game.PercentageID != nil || game.Percentage == nil {
		return nil
	}
	percentage, err := uc.percentageRepo.GetOrCreate(game.Percentage.Percent)
	if err != nil {
		return domain.NewDatabaseError("resolve percentage", err)
	}
	game.PercentageID = &percentage.ID
	game.Percentage = percentage
	return nil
}

// CreateGame validates and persists a new game
func (uc *CatalogUseCase) CreateGame(game *domain.Game) (*domain.Game, error) {
	if err := uc.resolvePercentage(game); err != nil {
		return nil, err
	}
	if err := uc.validateGame(game); err != nil {
		return nil, err
	}

	existing, err := uc.gameRepo.GetByName(game.Name)
	if err != nil {
		return nil, domain.NewDatabaseError("check game name", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError(domain.ErrCodeNameTaken, "A game with this name already exists")
	}

	if err := uc.gameRepo.Create(game); err != nil {
		return nil, domain.NewDatabaseError("create game", err)
	}

	uc.logger.Info("Game created", zap.Int64("game_id", game.ID), zap.String("name", game.Name))
	return uc.GetGame(game.ID)
}

// UpdateGame validates and persists edits to a game
func (uc *CatalogUseCase) UpdateGame(game *domain.Game) (*domain.Game, error) {
	current, err := uc.GetGame(game.ID)
	if err != nil {
		return nil, err
	}

	if err := uc.resolvePercentage(game); err != nil {
		return nil, err
	}
	if err := uc.validateGame(game); err != nil {
		return nil, err
	}

	if game.Name != current.Name {
		existing, err := uc.gameRepo.GetByName(game.Name)
		if err != nil {
			return nil, domain.NewDatabaseError("check game name", err)
		}
		if existing != nil && existing.ID != game.ID {
			return nil, domain.NewConflictError(domain.ErrCodeNameTaken, "A game with this name already exists")
		}
	}

	game.CreatedAt = current.CreatedAt
	if err := uc.gameRepo.Update(game); err != nil {
		return nil, domain.NewDatabaseError("update game", err)
	}
	return uc.GetGame(game.ID)
}

// DeleteGame removes the game and all dependent rows in one transaction so
// a mid-sequence failure leaves no orphans.
func (uc *CatalogUseCase) DeleteGame(id int64) error {
	game, err := uc.GetGame(id)
	if err != nil {
		return err
	}

	tx := uc.db.Begin()
	if tx.Error != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	steps := []struct {
		name string
		run  func() error
	}{
		{"delete cart rows", func() error { return uc.cartRepo.WithTransaction(tx).DeleteByGame(id) }},
		{"delete wishlist rows", func() error { return uc.wishlistRepo.WithTransaction(tx).DeleteByGame(id) }},
		{"delete library rows", func() error { return uc.libraryRepo.WithTransaction(tx).DeleteByGame(id) }},
		{"delete reviews", func() error { return uc.reviewRepo.WithTransaction(tx).DeleteByGame(id) }},
		{"delete screenshots", func() error { return uc.screenshotRepo.WithTransaction(tx).DeleteByGame(id) }},
		{"delete game", func() error { return uc.gameRepo.WithTransaction(tx).Delete(id) }},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			tx.Rollback()
			return domain.NewDatabaseError(step.name, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Game deleted", zap.Int64("game_id", id), zap.String("name", game.Name))
	return nil
}

// AddScreenshot appends an image link to a game
func (uc *CatalogUseCase) AddScreenshot(gameID int64, link string) (*domain.Screenshot, error) {
	if link == "" {
		return nil, domain.NewValidationError("link", "is required")
	}
	if _, err := uc.GetGame(gameID); err != nil {
		return nil, err
	}

	screenshot := &domain.Screenshot{GameID: gameID, Link: link}
	if err := uc.screenshotRepo.Create(screenshot); err != nil {
		return nil, domain.NewDatabaseError("create screenshot", err)
	}
	return screenshot, nil
}

// DeleteScreenshot removes a single screenshot
func (uc *CatalogUseCase) DeleteScreenshot(id int64) error {
	if err := uc.screenshotRepo.Delete(id); err != nil {
		return domain.NewDatabaseError("delete screenshot", err)
	}
	return nil
}

// ListCategories retrieves all categories
func (uc *CatalogUseCase) ListCategories() ([]*domain.Category, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, domain.NewDatabaseError("list categories", err)
	}
	return categories, nil
}

// CreateCategory persists a new category with a unique name
func (uc *CatalogUseCase) CreateCategory(name, description string) (*domain.Category, error) {
	if name == "" {
		return nil, domain.NewValidationError("name", "is required")
	}

	existing, err := uc.categoryRepo.GetByName(name)
	if err != nil {
		return nil, domain.NewDatabaseError("check category name", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError(domain.ErrCodeNameTaken, "A category with this name already exists")
	}

	category := &domain.Category{Name: name, Description: description}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, domain.NewDatabaseError("create category", err)
	}
	return category, nil
}

// UpdateCategory edits a category with a uniqueness re-check
func (uc *CatalogUseCase) UpdateCategory(id int64, name, description string) (*domain.Category, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, domain.NewDatabaseError("get category", err)
	}
	if category == nil {
		return nil, domain.NewNotFoundError("Category")
	}

	if name != "" && name != category.Name {
		existing, err := uc.categoryRepo.GetByName(name)
		if err != nil {
			return nil, domain.NewDatabaseError("check category name", err)
		}
		if existing != nil && existing.ID != id {
			return nil, domain.NewConflictError(domain.ErrCodeNameTaken, "A category with this name already exists")
		}
		category.Name = name
	}
	category.Description = description

	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, domain.NewDatabaseError("update category", err)
	}
	return category, nil
}

// DeleteCategory removes a category unless games still reference it
func (uc *CatalogUseCase) DeleteCategory(id int64) error {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return domain.NewDatabaseError("get category", err)
	}
	if category == nil {
		return domain.NewNotFoundError("Category")
	}

	count, err := uc.categoryRepo.CountGames(id)
	if err != nil {
		return domain.NewDatabaseError("count category games", err)
	}
	if count > 0 {
		return domain.NewConflictError(domain.ErrCodeCategoryInUse,
			"Category still has games assigned to it")
	}

	if err := uc.categoryRepo.Delete(id); err != nil {
		return domain.NewDatabaseError("delete category", err)
	}
	return nil
}
