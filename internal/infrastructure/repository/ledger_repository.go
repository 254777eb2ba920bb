package repository

import (
	"time"

	"github.com/pressplay/gamestore/internal/domain"

	"gorm.io/gorm"
)

// LedgerRepository implements domain.LedgerRepository
type LedgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) domain.LedgerRepository {
	return &LedgerRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *LedgerRepository) WithTransaction(tx *gorm.DB) domain.LedgerRepository {
	return &LedgerRepository{db: tx}
}

// Create inserts a coin transaction row
func (r *LedgerRepository) Create(tx *domain.CoinTransaction) error {
	tx.CreatedAt = time.Now()
	return r.db.Create(tx).Error
}

// ListByUser retrieves a user's coin transactions with pagination
func (r *LedgerRepository) ListByUser(userID int64, limit, offset int) ([]*domain.CoinTransaction, error) {
	var transactions []*domain.CoinTransaction
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// Turnover sums all purchase amounts across the store
func (r *LedgerRepository) Turnover() (float64, error) {
	var total *float64
	err := r.db.Model(&domain.CoinTransaction{}).
		Where("type = ?", domain.CoinTransactionTypePurchase).
		Select("SUM(amount)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
