package app

import (
	"github.com/pressplay/gamestore/internal/domain"
	"github.com/pressplay/gamestore/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewUserRepository(db)
}

func (a *application) InitCatalogRepositories(db *gorm.DB) (
	domain.GameRepository,
	domain.CategoryRepository,
	domain.PercentageRepository,
	domain.ScreenshotRepository,
) {
	return repository.NewGameRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewPercentageRepository(db),
		repository.NewScreenshotRepository(db)
}

func (a *application) InitStoreRepositories(db *gorm.DB) (
	domain.LibraryRepository,
	domain.CartRepository,
	domain.WishlistRepository,
	domain.ReviewRepository,
	domain.LedgerRepository,
) {
	return repository.NewLibraryRepository(db),
		repository.NewCartRepository(db),
		repository.NewWishlistRepository(db),
		repository.NewReviewRepository(db),
		repository.NewLedgerRepository(db)
}

func (a *application) InitFriendRepository(db *gorm.DB) domain.FriendRepository {
	return repository.NewFriendRepository(db)
}
