package store

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pressplay/gamestore/internal/domain"
	"github.com/pressplay/gamestore/internal/domain/mocks"
	"github.com/pressplay/gamestore/internal/infrastructure/lock"
	"github.com/pressplay/gamestore/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

type storeMocks struct {
	gameRepo     *mocks.MockGameRepository
	userRepo     *mocks.MockUserRepository
	cartRepo     *mocks.MockCartRepository
	wishlistRepo *mocks.MockWishlistRepository
	libraryRepo  *mocks.MockLibraryRepository
	reviewRepo   *mocks.MockReviewRepository
	ledgerRepo   *mocks.MockLedgerRepository
}

func newTestStoreUseCase(ctrl *gomock.Controller) (*StoreUseCase, *storeMocks) {
	m := &storeMocks{
		gameRepo:     mocks.NewMockGameRepository(ctrl),
		userRepo:     mocks.NewMockUserRepository(ctrl),
		cartRepo:     mocks.NewMockCartRepository(ctrl),
		wishlistRepo: mocks.NewMockWishlistRepository(ctrl),
		libraryRepo:  mocks.NewMockLibraryRepository(ctrl),
		reviewRepo:   mocks.NewMockReviewRepository(ctrl),
		ledgerRepo:   mocks.NewMockLedgerRepository(ctrl),
	}

	uc := &StoreUseCase{
		gameRepo:        m.gameRepo,
		userRepo:        m.userRepo,
		cartRepo:        m.cartRepo,
		wishlistRepo:    m.wishlistRepo,
		libraryRepo:     m.libraryRepo,
		reviewRepo:      m.reviewRepo,
		ledgerRepo:      m.ledgerRepo,
		logger:          logger.NewLogger("test", "debug"),
		userLockManager: lock.NewUserLockManager(),
	}
	return uc, m
}

func createTestGame() *domain.Game {
	return &domain.Game{
		ID:    7,
		Name:  "Starfall Siege",
		Price: 29.99,
	}
}

func TestAddToCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	game := createTestGame()

	t.Run("Success", func(t *testing.T) {
		uc, m := newTestStoreUseCase(ctrl)

		m.gameRepo.EXPECT().GetByID(game.ID).Return(game, nil)
		m.libraryRepo.EXPECT().Exists(int64(1), game.ID).Return(false, nil)
		m.cartRepo.EXPECT().Get(int64(1), game.ID).Return(nil, nil)
		m.cartRepo.EXPECT().Create(gomock.Any()).Return(nil)

		assert.NoError(t, uc.AddToCart(1, game.ID))
	})

	t.Run("Game_Not_Found", func(t *testing.T) {
		uc, m := newTestStoreUseCase(ctrl)

		m.gameRepo.EXPECT().GetByID(int64(999)).Return(nil, nil)

		err := uc.AddToCart(1, 999)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Already_Owned", func(t *testing.T) {
		uc, m := newTestStoreUseCase(ctrl)

		m.gameRepo.EXPECT().GetByID(game.ID).Return(game, nil)
		m.libraryRepo.EXPECT().Exists(int64(1), game.ID).Return(true, nil)

		err := uc.AddToCart(1, game.ID)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeAlreadyOwned, appErr.Code)
	})

	t.Run("Duplicate", func(t *testing.T) {
		uc, m := newTestStoreUseCase(ctrl)

		m.gameRepo.EXPECT().GetByID(game.ID).Return(game, nil)
		m.libraryRepo.EXPECT().Exists(int64(1), game.ID).Return(false, nil)
		m.cartRepo.EXPECT().Get(int64(1), game.ID).Return(&domain.CartItem{UserID: 1, GameID: game.ID}, nil)

		err := uc.AddToCart(1, game.ID)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeAlreadyInCart, appErr.Code)
	})
}

func TestGetCartTotalUsesEffectivePrices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestStoreUseCase(ctrl)

	fullPrice := domain.Game{ID: 1, Price: 10.00}
	halfOff := domain.Game{ID: 2, Price: 20.00, Sale: true, Percentage: &domain.Percentage{Percent: 50}}

	m.cartRepo.EXPECT().ListByUser(int64(1)).Return([]*domain.CartItem{
		{UserID: 1, GameID: 1, Game: fullPrice},
		{UserID: 1, GameID: 2, Game: halfOff},
	}, nil)

	items, total, err := uc.GetCart(1)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.InDelta(t, 20.00, total, 0.0001)
}

func TestAddToWishlist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	game := createTestGame()

	t.Run("Assigns_Next_Rank", func(t *testing.T) {
		uc, m := newTestStoreUseCase(ctrl)

		m.gameRepo.EXPECT().GetByID(game.ID).Return(game, nil)
		m.libraryRepo.EXPECT().Exists(int64(1), game.ID).Return(false, nil)
		m.wishlistRepo.EXPECT().Get(int64(1), game.ID).Return(nil, nil)
		m.wishlistRepo.EXPECT().NextRank(int64(1)).Return(4, nil)
		m.wishlistRepo.EXPECT().Create(gomock.Any()).Return(nil)

		item, err := uc.AddToWishlist(1, game.ID)
		assert.NoError(t, err)
		assert.Equal(t, 4, item.Rank)
	})

	t.Run("Duplicate", func(t *testing.T) {
		uc, m := newTestStoreUseCase(ctrl)

		m.gameRepo.EXPECT().GetByID(game.ID).Return(game, nil)
		m.libraryRepo.EXPECT().Exists(int64(1), game.ID).Return(false, nil)
		m.wishlistRepo.EXPECT().Get(int64(1), game.ID).Return(&domain.WishlistItem{Rank: 2}, nil)

		_, err := uc.AddToWishlist(1, game.ID)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeAlreadyInWishlist, appErr.Code)
	})

	t.Run("Owned_Game_Rejected", func(t *testing.T) {
		uc, m := newTestStoreUseCase(ctrl)

		m.gameRepo.EXPECT().GetByID(game.ID).Return(game, nil)
		m.libraryRepo.EXPECT().Exists(int64(1), game.ID).Return(true, nil)

		_, err := uc.AddToWishlist(1, game.ID)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeAlreadyOwned, appErr.Code)
	})
}

func TestPostReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	game := createTestGame()

	t.Run("Empty_Text", func(t *testing.T) {
		uc, _ := newTestStoreUseCase(ctrl)

		_, err := uc.PostReview(1, game.ID, "", true)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeValidation, appErr.Code)
	})

	t.Run("Not_Owned", func(t *testing.T) {
		uc, m := newTestStoreUseCase(ctrl)

		m.gameRepo.EXPECT().GetByID(game.ID).Return(game, nil)
		m.libraryRepo.EXPECT().Exists(int64(1), game.ID).Return(false, nil)

		_, err := uc.PostReview(1, game.ID, "Great game", true)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNotOwned, appErr.Code)
		assert.Equal(t, 403, appErr.HTTPStatus)
	})

	t.Run("Second_Review_Rejected", func(t *testing.T) {
		uc, m := newTestStoreUseCase(ctrl)

		m.gameRepo.EXPECT().GetByID(game.ID).Return(game, nil)
		m.libraryRepo.EXPECT().Exists(int64(1), game.ID).Return(true, nil)
		m.reviewRepo.EXPECT().GetByUserAndGame(int64(1), game.ID).Return(&domain.Review{ID: 5}, nil)

		_, err := uc.PostReview(1, game.ID, "Another take", false)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeReviewExists, appErr.Code)
	})

	t.Run("Success", func(t *testing.T) {
		uc, m := newTestStoreUseCase(ctrl)

		m.gameRepo.EXPECT().GetByID(game.ID).Return(game, nil)
		m.libraryRepo.EXPECT().Exists(int64(1), game.ID).Return(true, nil)
		m.reviewRepo.EXPECT().GetByUserAndGame(int64(1), game.ID).Return(nil, nil)
		m.reviewRepo.EXPECT().Create(gomock.Any()).Return(nil)

		review, err := uc.PostReview(1, game.ID, "Great game", true)
		assert.NoError(t, err)
		assert.True(t, review.Recommended)
	})
}

func TestDeleteReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	review := &domain.Review{ID: 5, UserID: 1, GameID: 7}

	t.Run("Author_Can_Delete", func(t *testing.T) {
		uc, m := newTestStoreUseCase(ctrl)

		m.reviewRepo.EXPECT().GetByID(review.ID).Return(review, nil)
		m.reviewRepo.EXPECT().Delete(review.ID).Return(nil)

		assert.NoError(t, uc.DeleteReview(1, review.ID, false))
	})

	t.Run("Stranger_Forbidden", func(t *testing.T) {
		uc, m := newTestStoreUseCase(ctrl)

		m.reviewRepo.EXPECT().GetByID(review.ID).Return(review, nil)

		err := uc.DeleteReview(2, review.ID, false)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeForbidden, appErr.Code)
	})

	t.Run("Admin_Can_Delete_Any", func(t *testing.T) {
		uc, m := newTestStoreUseCase(ctrl)

		m.reviewRepo.EXPECT().GetByID(review.ID).Return(review, nil)
		m.reviewRepo.EXPECT().Delete(review.ID).Return(nil)

		assert.NoError(t, uc.DeleteReview(2, review.ID, true))
	})

	t.Run("Missing_Review", func(t *testing.T) {
		uc, m := newTestStoreUseCase(ctrl)

		m.reviewRepo.EXPECT().GetByID(int64(404)).Return(nil, nil)

		err := uc.DeleteReview(1, 404, false)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNotFound, appErr.Code)
	})
}
