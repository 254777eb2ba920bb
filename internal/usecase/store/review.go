package store

import (
	"github.com/pressplay/gamestore/internal/domain"
	"go.uber.org/zap"
)

// PostReview inserts a review for an owned game, one per (user, game)
func (uc *StoreUseCase) PostReview(userID, gameID int64, text string, recommended bool) (*domain.Review, error) {
	if text == "" {
		return nil, domain.NewValidationError("text", "is required")
	}
	if _, err := uc.getGame(gameID); err != nil {
		return nil, err
	}

	owned, err := uc.libraryRepo.Exists(userID, gameID)
	if err != nil {
		return nil, domain.NewDatabaseError("check ownership", err)
	}
	if !owned {
		return nil, domain.NewAppError(domain.ErrCodeNotOwned,
			"You can only review games you own", 403, nil)
	}

	existing, err := uc.reviewRepo.GetByUserAndGame(userID, gameID)
	if err != nil {
		return nil, domain.NewDatabaseError("check review", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError(domain.ErrCodeReviewExists, "You already reviewed this game")
	}

	review := &domain.Review{
		UserID:      userID,
		GameID:      gameID,
		Text:        text,
		Recommended: recommended,
	}
	if err := uc.reviewRepo.Create(review); err != nil {
		return nil, domain.NewDatabaseError("create review", err)
	}

	uc.logger.Debug("Review posted", zap.Int64("user_id", userID), zap.Int64("game_id", gameID))
	return review, nil
}

// DeleteReview removes a review. Only its author or an admin may do so.
func (uc *StoreUseCase) DeleteReview(userID, reviewID int64, isAdmin bool) error {
	review, err := uc.reviewRepo.GetByID(reviewID)
	if err != nil {
		return domain.NewDatabaseError("get review", err)
	}
	if review == nil {
		return domain.NewNotFoundError("Review")
	}
	if review.UserID != userID && !isAdmin {
		return domain.NewForbiddenError("You can only delete your own reviews")
	}

	if err := uc.reviewRepo.Delete(reviewID); err != nil {
		return domain.NewDatabaseError("delete review", err)
	}
	return nil
}

// GameReviews lists a game's reviews from non-banned authors
func (uc *StoreUseCase) GameReviews(gameID int64) ([]*domain.Review, error) {
	if _, err := uc.getGame(gameID); err != nil {
		return nil, err
	}
	reviews, err := uc.reviewRepo.ListByGame(gameID)
	if err != nil {
		return nil, domain.NewDatabaseError("list reviews", err)
	}
	return reviews, nil
}

// GameReviewStats aggregates recommendation stats, banned authors excluded
func (uc *StoreUseCase) GameReviewStats(gameID int64) (*domain.ReviewStats, error) {
	if _, err := uc.getGame(gameID); err != nil {
		return nil, err
	}
	stats, err := uc.reviewRepo.Stats(gameID)
	if err != nil {
		return nil, domain.NewDatabaseError("review stats", err)
	}
	return stats, nil
}
