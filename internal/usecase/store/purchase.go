package store

import (
	"context"
	"time"

	"github.com/pressplay/gamestore/internal/domain"
	"go.uber.org/zap"
)

// Purchase debits the effective price and inserts the ownership row in a
// single transaction. The user row is locked FOR UPDATE and the flow is
// additionally serialized per user in-process, so overlapping requests
// cannot double-spend.
func (uc *StoreUseCase) Purchase(userID, gameID int64) (*domain.LibraryEntry, error) {
	game, err := uc.getGame(gameID)
	if err != nil {
		return nil, err
	}

	if err := uc.userLockManager.Lock(context.Background(), userID); err != nil {
		return nil, domain.NewInternalError("Failed to acquire purchase lock", err)
	}
	defer uc.userLockManager.Unlock(userID)

	return uc.purchaseLocked(userID, game)
}

// purchaseLocked runs the transactional part. Callers hold the user lock.
func (uc *StoreUseCase) purchaseLocked(userID int64, game *domain.Game) (*domain.LibraryEntry, error) {
	price := game.EffectivePrice()

	tx := uc.db.Begin()
	if tx.Error != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	txUserRepo := uc.userRepo.WithTransaction(tx)
	txLibraryRepo := uc.libraryRepo.WithTransaction(tx)
	txCartRepo := uc.cartRepo.WithTransaction(tx)
	txLedgerRepo := uc.ledgerRepo.WithTransaction(tx)

	user, err := txUserRepo.GetByIDForUpdate(userID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewDatabaseError("get user", err)
	}
	if user == nil {
		tx.Rollback()
		return nil, domain.NewNotFoundError("User")
	}

	owned, err := txLibraryRepo.Exists(userID, game.ID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewDatabaseError("check ownership", err)
	}
	if owned {
		tx.Rollback()
		return nil, domain.NewConflictError(domain.ErrCodeAlreadyOwned, "Game is already in your library")
	}

	if user.Balance < price {
		tx.Rollback()
		return nil, domain.NewInsufficientCoinsError()
	}

	newBalance := user.Balance - price
	if err := txUserRepo.UpdateBalance(userID, newBalance); err != nil {
		tx.Rollback()
		return nil, domain.NewDatabaseError("debit balance", err)
	}

	entry := &domain.LibraryEntry{
		UserID:      userID,
		GameID:      game.ID,
		PurchasedAt: time.Now(),
	}
	if err := txLibraryRepo.Create(entry); err != nil {
		tx.Rollback()
		return nil, domain.NewDatabaseError("create library entry", err)
	}

	ledger := &domain.CoinTransaction{
		UserID:     userID,
		Type:       domain.CoinTransactionTypePurchase,
		Amount:     price,
		OldBalance: user.Balance,
		NewBalance: newBalance,
		GameID:     &game.ID,
		CreatedAt:  time.Now(),
	}
	if err := txLedgerRepo.Create(ledger); err != nil {
		tx.Rollback()
		return nil, domain.NewDatabaseError("create ledger entry", err)
	}

	// A purchased game has no business staying in the cart.
	if err := txCartRepo.Delete(userID, game.ID); err != nil {
		tx.Rollback()
		return nil, domain.NewDatabaseError("clear cart entry", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Game purchased",
		zap.Int64("user_id", userID),
		zap.Int64("game_id", game.ID),
		zap.Float64("price", price),
		zap.Float64("new_balance", newBalance))

	return entry, nil
}

// PurchaseCart buys every game in the user's cart one by one, each with
// full purchase guarantees. The first failure stops the run; completed
// purchases stand.
func (uc *StoreUseCase) PurchaseCart(userID int64) ([]*domain.LibraryEntry, error) {
	items, err := uc.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, domain.NewDatabaseError("list cart", err)
	}
	if len(items) == 0 {
		return nil, domain.NewValidationError("cart", "is empty")
	}

	if err := uc.userLockManager.Lock(context.Background(), userID); err != nil {
		return nil, domain.NewInternalError("Failed to acquire purchase lock", err)
	}
	defer uc.userLockManager.Unlock(userID)

	var entries []*domain.LibraryEntry
	for _, item := range items {
		game, err := uc.getGame(item.GameID)
		if err != nil {
			return entries, err
		}
		entry, err := uc.purchaseLocked(userID, game)
		if err != nil {
			return entries, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
