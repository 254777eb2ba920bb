package store

import (
	"time"

	"github.com/pressplay/gamestore/internal/domain"
	"go.uber.org/zap"
)

// AddToWishlist puts a game on the user's wishlist at the next rank.
// Owned games and duplicates are rejected.
func (uc *StoreUseCase) AddToWishlist(userID, gameID int64) (*domain.WishlistItem, error) {
	if _, err := uc.getGame(gameID); err != nil {
		return nil, err
	}
	if err := uc.checkNotOwned(userID, gameID); err != nil {
		return nil, err
	}

	existing, err := uc.wishlistRepo.Get(userID, gameID)
	if err != nil {
		return nil, domain.NewDatabaseError("check wishlist", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError(domain.ErrCodeAlreadyInWishlist, "Game is already on your wishlist")
	}

	rank, err := uc.wishlistRepo.NextRank(userID)
	if err != nil {
		return nil, domain.NewDatabaseError("assign wishlist rank", err)
	}

	item := &domain.WishlistItem{
		UserID:  userID,
		GameID:  gameID,
		Rank:    rank,
		AddedAt: time.Now(),
	}
	if err := uc.wishlistRepo.Create(item); err != nil {
		return nil, domain.NewDatabaseError("add to wishlist", err)
	}

	uc.logger.Debug("Game added to wishlist",
		zap.Int64("user_id", userID),
		zap.Int64("game_id", gameID),
		zap.Int("rank", rank))
	return item, nil
}

// RemoveFromWishlist deletes the wishlist row, a no-op when absent. The
// freed rank is not reused.
func (uc *StoreUseCase) RemoveFromWishlist(userID, gameID int64) error {
	if err := uc.wishlistRepo.Delete(userID, gameID); err != nil {
		return domain.NewDatabaseError("remove from wishlist", err)
	}
	return nil
}

// GetWishlist returns the wishlist ordered by rank
func (uc *StoreUseCase) GetWishlist(userID int64) ([]*domain.WishlistItem, error) {
	items, err := uc.wishlistRepo.ListByUser(userID)
	if err != nil {
		return nil, domain.NewDatabaseError("list wishlist", err)
	}
	return items, nil
}
