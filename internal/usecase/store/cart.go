package store

import (
	"github.com/pressplay/gamestore/internal/domain"
	"go.uber.org/zap"
)

// AddToCart puts a game into the user's cart. Owned games and duplicates
// are rejected.
func (uc *StoreUseCase) AddToCart(userID, gameID int64) error {
	if _, err := uc.getGame(gameID); err != nil {
		return err
	}
	if err := uc.checkNotOwned(userID, gameID); err != nil {
		return err
	}

	existing, err := uc.cartRepo.Get(userID, gameID)
	if err != nil {
		return domain.NewDatabaseError("check cart", err)
	}
	if existing != nil {
		return domain.NewConflictError(domain.ErrCodeAlreadyInCart, "Game is already in your cart")
	}

	if err := uc.cartRepo.Create(&domain.CartItem{UserID: userID, GameID: gameID}); err != nil {
		return domain.NewDatabaseError("add to cart", err)
	}

	uc.logger.Debug("Game added to cart", zap.Int64("user_id", userID), zap.Int64("game_id", gameID))
	return nil
}

// RemoveFromCart deletes the cart row, a no-op when absent
func (uc *StoreUseCase) RemoveFromCart(userID, gameID int64) error {
	if err := uc.cartRepo.Delete(userID, gameID); err != nil {
		return domain.NewDatabaseError("remove from cart", err)
	}
	return nil
}

// GetCart returns the cart contents and the total of live effective prices
func (uc *StoreUseCase) GetCart(userID int64) ([]*domain.CartItem, float64, error) {
	items, err := uc.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, 0, domain.NewDatabaseError("list cart", err)
	}

	var total float64
	for _, item := range items {
		total += item.Game.EffectivePrice()
	}
	return items, total, nil
}

// CartCount returns the number of games in the user's cart
func (uc *StoreUseCase) CartCount(userID int64) (int64, error) {
	count, err := uc.cartRepo.CountByUser(userID)
	if err != nil {
		return 0, domain.NewDatabaseError("count cart", err)
	}
	return count, nil
}
