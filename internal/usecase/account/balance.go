package account

import (
	"time"

	"github.com/pressplay/gamestore/internal/domain"
	"go.uber.org/zap"
)

// Coin top-up bounds per request
const (
	MinTopUpCoins = 1
	MaxTopUpCoins = 100000
)

// AddCoins credits a user's balance by the given coin amount and records a
// ledger row, all in one transaction.
func (uc *AccountUseCase) AddCoins(userID int64, coins int64) (*domain.User, error) {
	if coins < MinTopUpCoins || coins > MaxTopUpCoins {
		return nil, domain.NewValidationError("coins", "must be between 1 and 100000")
	}
	amount := float64(coins) / domain.CoinsPerUnit

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

	oldBalance := user.Balance
	newBalance := oldBalance + amount

	if err := txUserRepo.UpdateBalance(userID, newBalance); err != nil {
		tx.Rollback()
		return nil, domain.NewDatabaseError("update balance", err)
	}

	entry := &domain.CoinTransaction{
		UserID:     userID,
		Type:       domain.CoinTransactionTypeTopUp,
		Amount:     amount,
		OldBalance: oldBalance,
		NewBalance: newBalance,
		CreatedAt:  time.Now(),
	}
	if err := txLedgerRepo.Create(entry); err != nil {
		tx.Rollback()
		return nil, domain.NewDatabaseError("create ledger entry", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	user.Balance = newBalance
	uc.logger.Info("Coins added",
		zap.Int64("user_id", userID),
		zap.Int64("coins", coins),
		zap.Float64("new_balance", newBalance))

	return user, nil
}
