package store

import (
	"github.com/pressplay/gamestore/internal/domain"
	"github.com/pressplay/gamestore/internal/infrastructure/lock"
	"github.com/pressplay/gamestore/internal/infrastructure/logger"
	"gorm.io/gorm"
)

// StoreUseCase implements domain.StoreUseCase
type StoreUseCase struct {
	gameRepo        domain.GameRepository
	userRepo        domain.UserRepository
	cartRepo        domain.CartRepository
	wishlistRepo    domain.WishlistRepository
	libraryRepo     domain.LibraryRepository
	reviewRepo      domain.ReviewRepository
	ledgerRepo      domain.LedgerRepository
	db              *gorm.DB
	logger          *logger.Logger
	userLockManager *lock.UserLockManager
}

// NewStoreUseCase creates a new store use case
func NewStoreUseCase(
	gameRepo domain.GameRepository,
	userRepo domain.UserRepository,
	cartRepo domain.CartRepository,
	wishlistRepo domain.WishlistRepository,
	libraryRepo domain.LibraryRepository,
	reviewRepo domain.ReviewRepository,
	ledgerRepo domain.LedgerRepository,
	db *gorm.DB,
	logger *logger.Logger,
	userLockManager *lock.UserLockManager,
) domain.StoreUseCase {
	return &StoreUseCase{
		gameRepo:        gameRepo,
		userRepo:        userRepo,
		cartRepo:        cartRepo,
		wishlistRepo:    wishlistRepo,
		libraryRepo:     libraryRepo,
		reviewRepo:      reviewRepo,
		ledgerRepo:      ledgerRepo,
		db:              db,
		logger:          logger,
		userLockManager: userLockManager,
	}
}

// getGame loads a game or reports not found
func (uc *StoreUseCase) getGame(gameID int64) (*domain.Game, error) {
	game, err := uc.gameRepo.GetByID(gameID)
	if err != nil {
		return nil, domain.NewDatabaseError("get game", err)
	}
	if game == nil {
		return nil, domain.NewNotFoundError("Game")
	}
	return game, nil
}

// checkNotOwned fails when the user already owns the game
func (uc *StoreUseCase) checkNotOwned(userID, gameID int64) error {
	owned, err := uc.libraryRepo.Exists(userID, gameID)
	if err != nil {
		return domain.NewDatabaseError("check ownership", err)
	}
	if owned {
		return domain.NewConflictError(domain.ErrCodeAlreadyOwned, "Game is already in your library")
	}
	return nil
}

// GetLibrary retrieves the user's owned games
func (uc *StoreUseCase) GetLibrary(userID int64) ([]*domain.LibraryEntry, error) {
	entries, err := uc.libraryRepo.ListByUser(userID)
	if err != nil {
		return nil, domain.NewDatabaseError("list library", err)
	}
	return entries, nil
}
