package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/pressplay/gamestore/internal/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestStoreUseCaseWithDB wires a sqlmock-backed gorm handle into the
// use case so the transactional purchase flow can run. The repositories
// stay gomock mocks; only Begin/Commit/Rollback hit the mocked driver.
func newTestStoreUseCaseWithDB(t *testing.T, ctrl *gomock.Controller) (*StoreUseCase, *storeMocks, sqlmock.Sqlmock) {
	sqlDB, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)

	uc, m := newTestStoreUseCase(ctrl)
	uc.db = gormDB

	m.userRepo.EXPECT().WithTransaction(gomock.Any()).Return(m.userRepo).AnyTimes()
	m.libraryRepo.EXPECT().WithTransaction(gomock.Any()).Return(m.libraryRepo).AnyTimes()
	m.cartRepo.EXPECT().WithTransaction(gomock.Any()).Return(m.cartRepo).AnyTimes()
	m.ledgerRepo.EXPECT().WithTransaction(gomock.Any()).Return(m.ledgerRepo).AnyTimes()

	return uc, m, dbMock
}

// price 20.00 at 50% off, so the effective price is exactly 10.00
func createSaleGame() *domain.Game {
	return &domain.Game{
		ID:         7,
		Name:       "Starfall Siege",
		Price:      20.00,
		Sale:       true,
		Percentage: &domain.Percentage{ID: 3, Percent: 50},
	}
}

func TestPurchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	game := createSaleGame()

	t.Run("Success_Debits_Effective_Price", func(t *testing.T) {
		uc, m, dbMock := newTestStoreUseCaseWithDB(t, ctrl)

		m.gameRepo.EXPECT().GetByID(game.ID).Return(game, nil)
		dbMock.ExpectBegin()
		m.userRepo.EXPECT().GetByIDForUpdate(int64(1)).Return(&domain.User{ID: 1, Balance: 25.00}, nil)
		m.libraryRepo.EXPECT().Exists(int64(1), game.ID).Return(false, nil)
		m.userRepo.EXPECT().UpdateBalance(int64(1), 15.00).Return(nil)
		m.libraryRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *domain.LibraryEntry) error {
			assert.Equal(t, int64(1), entry.UserID)
			assert.Equal(t, game.ID, entry.GameID)
			assert.False(t, entry.PurchasedAt.IsZero())
			return nil
		})
		m.ledgerRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(txn *domain.CoinTransaction) error {
			assert.Equal(t, domain.CoinTransactionTypePurchase, txn.Type)
			assert.Equal(t, 10.00, txn.Amount)
			assert.Equal(t, 25.00, txn.OldBalance)
			assert.Equal(t, 15.00, txn.NewBalance)
			if assert.NotNil(t, txn.GameID) {
				assert.Equal(t, game.ID, *txn.GameID)
			}
			return nil
		})
		m.cartRepo.EXPECT().Delete(int64(1), game.ID).Return(nil)
		dbMock.ExpectCommit()

		entry, err := uc.Purchase(1, game.ID)
		assert.NoError(t, err)
		assert.Equal(t, game.ID, entry.GameID)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("Second_Purchase_Rejected", func(t *testing.T) {
		uc, m, dbMock := newTestStoreUseCaseWithDB(t, ctrl)

		m.gameRepo.EXPECT().GetByID(game.ID).Return(game, nil)
		dbMock.ExpectBegin()
		m.userRepo.EXPECT().GetByIDForUpdate(int64(1)).Return(&domain.User{ID: 1, Balance: 100.00}, nil)
		m.libraryRepo.EXPECT().Exists(int64(1), game.ID).Return(true, nil)
		dbMock.ExpectRollback()

		entry, err := uc.Purchase(1, game.ID)
		assert.Nil(t, entry)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeAlreadyOwned, appErr.Code)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("Insufficient_Balance_Leaves_Balance_Untouched", func(t *testing.T) {
		uc, m, dbMock := newTestStoreUseCaseWithDB(t, ctrl)

		m.gameRepo.EXPECT().GetByID(game.ID).Return(game, nil)
		dbMock.ExpectBegin()
		m.userRepo.EXPECT().GetByIDForUpdate(int64(1)).Return(&domain.User{ID: 1, Balance: 9.99}, nil)
		m.libraryRepo.EXPECT().Exists(int64(1), game.ID).Return(false, nil)
		dbMock.ExpectRollback()

		entry, err := uc.Purchase(1, game.ID)
		assert.Nil(t, entry)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInsufficientCoins, appErr.Code)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestPurchaseCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Empty_Cart_Rejected", func(t *testing.T) {
		uc, m, _ := newTestStoreUseCaseWithDB(t, ctrl)

		m.cartRepo.EXPECT().ListByUser(int64(1)).Return(nil, nil)

		entries, err := uc.PurchaseCart(1)
		assert.Nil(t, entries)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeValidation, appErr.Code)
	})

	t.Run("Stops_At_First_Failure_Keeping_Completed_Purchases", func(t *testing.T) {
		uc, m, dbMock := newTestStoreUseCaseWithDB(t, ctrl)

		cheap := &domain.Game{ID: 7, Name: "Mistwood Tales", Price: 10.00}
		pricey := &domain.Game{ID: 8, Name: "Crown and Cannon", Price: 100.00}

		m.cartRepo.EXPECT().ListByUser(int64(1)).Return([]*domain.CartItem{
			{UserID: 1, GameID: cheap.ID},
			{UserID: 1, GameID: pricey.ID},
		}, nil)

		// First item goes through and commits.
		m.gameRepo.EXPECT().GetByID(cheap.ID).Return(cheap, nil)
		dbMock.ExpectBegin()
		m.userRepo.EXPECT().GetByIDForUpdate(int64(1)).Return(&domain.User{ID: 1, Balance: 15.00}, nil)
		m.libraryRepo.EXPECT().Exists(int64(1), cheap.ID).Return(false, nil)
		m.userRepo.EXPECT().UpdateBalance(int64(1), 5.00).Return(nil)
		m.libraryRepo.EXPECT().Create(gomock.Any()).Return(nil)
		m.ledgerRepo.EXPECT().Create(gomock.Any()).Return(nil)
		m.cartRepo.EXPECT().Delete(int64(1), cheap.ID).Return(nil)
		dbMock.ExpectCommit()

		// Second item fails on balance and rolls back.
		m.gameRepo.EXPECT().GetByID(pricey.ID).Return(pricey, nil)
		dbMock.ExpectBegin()
		m.userRepo.EXPECT().GetByIDForUpdate(int64(1)).Return(&domain.User{ID: 1, Balance: 5.00}, nil)
		m.libraryRepo.EXPECT().Exists(int64(1), pricey.ID).Return(false, nil)
		dbMock.ExpectRollback()

		entries, err := uc.PurchaseCart(1)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInsufficientCoins, appErr.Code)
		if assert.Len(t, entries, 1) {
			assert.Equal(t, cheap.ID, entries[0].GameID)
		}
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}
