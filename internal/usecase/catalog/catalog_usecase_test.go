package catalog

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pressplay/gamestore/internal/domain"
	"github.com/pressplay/gamestore/internal/domain/mocks"
	"github.com/pressplay/gamestore/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

type catalogMocks struct {
	gameRepo       *mocks.MockGameRepository
	categoryRepo   *mocks.MockCategoryRepository
	percentageRepo *mocks.MockPercentageRepository
	screenshotRepo *mocks.MockScreenshotRepository
}

func newTestCatalogUseCase(ctrl *gomock.Controller) (*CatalogUseCase, *catalogMocks) {
	m := &catalogMocks{
		gameRepo:       mocks.NewMockGameRepository(ctrl),
		categoryRepo:   mocks.NewMockCategoryRepository(ctrl),
		percentageRepo: mocks.NewMockPercentageRepository(ctrl),
		screenshotRepo: mocks.NewMockScreenshotRepository(ctrl),
	}

	uc := &CatalogUseCase{
		gameRepo:       m.gameRepo,
		categoryRepo:   m.categoryRepo,
		percentageRepo: m.percentageRepo,
		screenshotRepo: m.screenshotRepo,
		logger:         logger.NewLogger("test", "debug"),
	}
	return uc, m
}

func validGame() *domain.Game {
	return &domain.Game{
		Name:        "Starfall Siege",
		Price:       29.99,
		ReleaseDate: time.Now(),
		CategoryID:  1,
	}
}

func TestCreateGameValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Missing_Name", func(t *testing.T) {
		uc, _ := newTestCatalogUseCase(ctrl)
		game := validGame()
		game.Name = ""

		_, err := uc.CreateGame(game)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeValidation, appErr.Code)
	})

	t.Run("Non_Positive_Price", func(t *testing.T) {
		uc, _ := newTestCatalogUseCase(ctrl)
		game := validGame()
		game.Price = 0

		_, err := uc.CreateGame(game)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeValidation, appErr.Code)
	})

	t.Run("Sale_Without_Percentage", func(t *testing.T) {
		uc, _ := newTestCatalogUseCase(ctrl)
		game := validGame()
		game.Sale = true

		_, err := uc.CreateGame(game)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeValidation, appErr.Code)
	})

	t.Run("Unknown_Category", func(t *testing.T) {
		uc, m := newTestCatalogUseCase(ctrl)
		game := validGame()

		m.categoryRepo.EXPECT().GetByID(game.CategoryID).Return(nil, nil)

		_, err := uc.CreateGame(game)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Duplicate_Name", func(t *testing.T) {
		uc, m := newTestCatalogUseCase(ctrl)
		game := validGame()

		m.categoryRepo.EXPECT().GetByID(game.CategoryID).Return(&domain.Category{ID: 1}, nil)
		m.gameRepo.EXPECT().GetByName(game.Name).Return(&domain.Game{ID: 8, Name: game.Name}, nil)

		_, err := uc.CreateGame(game)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNameTaken, appErr.Code)
	})
}

func TestCreateGameResolvesDiscount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newTestCatalogUseCase(ctrl)
	game := validGame()
	game.Sale = true
	game.Percentage = &domain.Percentage{Percent: 30}
	stored := &domain.Percentage{ID: 3, Percent: 30}

	m.percentageRepo.EXPECT().GetOrCreate(30).Return(stored, nil)
	m.categoryRepo.EXPECT().GetByID(game.CategoryID).Return(&domain.Category{ID: 1}, nil)
	m.percentageRepo.EXPECT().GetByID(stored.ID).Return(stored, nil)
	m.gameRepo.EXPECT().GetByName(game.Name).Return(nil, nil)
	m.gameRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(g *domain.Game) error {
		assert.NotNil(t, g.PercentageID)
		assert.Equal(t, stored.ID, *g.PercentageID)
		g.ID = 7
		return nil
	})
	m.gameRepo.EXPECT().GetByID(int64(7)).Return(game, nil)

	created, err := uc.CreateGame(game)
	assert.NoError(t, err)
	assert.NotNil(t, created)
}

func TestDeleteCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Blocked_While_In_Use", func(t *testing.T) {
		uc, m := newTestCatalogUseCase(ctrl)

		m.categoryRepo.EXPECT().GetByID(int64(1)).Return(&domain.Category{ID: 1, Name: "Action"}, nil)
		m.categoryRepo.EXPECT().CountGames(int64(1)).Return(int64(3), nil)

		err := uc.DeleteCategory(1)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeCategoryInUse, appErr.Code)
	})

	t.Run("Empty_Category_Deleted", func(t *testing.T) {
		uc, m := newTestCatalogUseCase(ctrl)

		m.categoryRepo.EXPECT().GetByID(int64(1)).Return(&domain.Category{ID: 1, Name: "Action"}, nil)
		m.categoryRepo.EXPECT().CountGames(int64(1)).Return(int64(0), nil)
		m.categoryRepo.EXPECT().Delete(int64(1)).Return(nil)

		assert.NoError(t, uc.DeleteCategory(1))
	})

	t.Run("Missing_Category", func(t *testing.T) {
		uc, m := newTestCatalogUseCase(ctrl)

		m.categoryRepo.EXPECT().GetByID(int64(404)).Return(nil, nil)

		err := uc.DeleteCategory(404)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNotFound, appErr.Code)
	})
}

func TestCreateCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Duplicate_Name", func(t *testing.T) {
		uc, m := newTestCatalogUseCase(ctrl)

		m.categoryRepo.EXPECT().GetByName("Action").Return(&domain.Category{ID: 1, Name: "Action"}, nil)

		_, err := uc.CreateCategory("Action", "")
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNameTaken, appErr.Code)
	})

	t.Run("Success", func(t *testing.T) {
		uc, m := newTestCatalogUseCase(ctrl)

		m.categoryRepo.EXPECT().GetByName("Indie").Return(nil, nil)
		m.categoryRepo.EXPECT().Create(gomock.Any()).Return(nil)

		category, err := uc.CreateCategory("Indie", "Small studio games")
		assert.NoError(t, err)
		assert.Equal(t, "Indie", category.Name)
	})
}

func TestAddScreenshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Empty_Link", func(t *testing.T) {
		uc, _ := newTestCatalogUseCase(ctrl)

		_, err := uc.AddScreenshot(7, "")
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeValidation, appErr.Code)
	})

	t.Run("Success", func(t *testing.T) {
		uc, m := newTestCatalogUseCase(ctrl)

		m.gameRepo.EXPECT().GetByID(int64(7)).Return(validGame(), nil)
		m.screenshotRepo.EXPECT().Create(gomock.Any()).Return(nil)

		shot, err := uc.AddScreenshot(7, "shots/1.png")
		assert.NoError(t, err)
		assert.Equal(t, "shots/1.png", shot.Link)
	})
}
