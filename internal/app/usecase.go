package app

import (
	"github.com/pressplay/gamestore/internal/domain"
	"github.com/pressplay/gamestore/internal/infrastructure/auth"
	"github.com/pressplay/gamestore/internal/infrastructure/lock"
	"github.com/pressplay/gamestore/internal/infrastructure/logger"
	"github.com/pressplay/gamestore/internal/usecase/account"
	"github.com/pressplay/gamestore/internal/usecase/admin"
	"github.com/pressplay/gamestore/internal/usecase/catalog"
	"github.com/pressplay/gamestore/internal/usecase/social"
	"github.com/pressplay/gamestore/internal/usecase/store"
	"gorm.io/gorm"
)

func (a *application) InitAccountUseCase(
	userRepo domain.UserRepository,
	cartRepo domain.CartRepository,
	wishlistRepo domain.WishlistRepository,
	libraryRepo domain.LibraryRepository,
	reviewRepo domain.ReviewRepository,
	friendRepo domain.FriendRepository,
	ledgerRepo domain.LedgerRepository,
	jwt auth.JWTService,
	db *gorm.DB,
	log *logger.Logger,
) domain.AccountUseCase {
	return account.NewAccountUseCase(userRepo, cartRepo, wishlistRepo, libraryRepo, reviewRepo, friendRepo, ledgerRepo, jwt, db, log)
}

func (a *application) InitCatalogUseCase(
	gameRepo domain.GameRepository,
	categoryRepo domain.CategoryRepository,
	percentageRepo domain.PercentageRepository,
	screenshotRepo domain.ScreenshotRepository,
	cartRepo domain.CartRepository,
	wishlistRepo domain.WishlistRepository,
	libraryRepo domain.LibraryRepository,
	reviewRepo domain.ReviewRepository,
	db *gorm.DB,
	log *logger.Logger,
) domain.CatalogUseCase {
	return catalog.NewCatalogUseCase(gameRepo, categoryRepo, percentageRepo, screenshotRepo, cartRepo, wishlistRepo, libraryRepo, reviewRepo, db, log)
}

func (a *application) InitStoreUseCase(
	gameRepo domain.GameRepository,
	userRepo domain.UserRepository,
	cartRepo domain.CartRepository,
	wishlistRepo domain.WishlistRepository,
	libraryRepo domain.LibraryRepository,
	reviewRepo domain.ReviewRepository,
	ledgerRepo domain.LedgerRepository,
	db *gorm.DB,
	log *logger.Logger,
	lockManager *lock.UserLockManager,
) domain.StoreUseCase {
	return store.NewStoreUseCase(gameRepo, userRepo, cartRepo, wishlistRepo, libraryRepo, reviewRepo, ledgerRepo, db, log, lockManager)
}

func (a *application) InitSocialUseCase(
	friendRepo domain.FriendRepository,
	userRepo domain.UserRepository,
	log *logger.Logger,
) domain.SocialUseCase {
	return social.NewSocialUseCase(friendRepo, userRepo, log)
}

func (a *application) InitAdminUseCase(
	userRepo domain.UserRepository,
	gameRepo domain.GameRepository,
	categoryRepo domain.CategoryRepository,
	reviewRepo domain.ReviewRepository,
	libraryRepo domain.LibraryRepository,
	ledgerRepo domain.LedgerRepository,
	log *logger.Logger,
) domain.AdminUseCase {
	return admin.NewAdminUseCase(userRepo, gameRepo, categoryRepo, reviewRepo, libraryRepo, ledgerRepo, log)
}
