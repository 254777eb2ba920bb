package admin

import (
	"github.com/pressplay/gamestore/internal/domain"
	"github.com/pressplay/gamestore/internal/infrastructure/logger"
)

// AdminUseCase implements domain.AdminUseCase
type AdminUseCase struct {
	userRepo     domain.UserRepository
	gameRepo     domain.GameRepository
	categoryRepo domain.CategoryRepository
	reviewRepo   domain.ReviewRepository
	libraryRepo  domain.LibraryRepository
	ledgerRepo   domain.LedgerRepository
	logger       *logger.Logger
}

// NewAdminUseCase creates a new admin use case
func NewAdminUseCase(
	userRepo domain.UserRepository,
	gameRepo domain.GameRepository,
	categoryRepo domain.CategoryRepository,
	reviewRepo domain.ReviewRepository,
	libraryRepo domain.LibraryRepository,
	ledgerRepo domain.LedgerRepository,
	logger *logger.Logger,
) domain.AdminUseCase {
	return &AdminUseCase{
		userRepo:     userRepo,
		gameRepo:     gameRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
		libraryRepo:  libraryRepo,
		ledgerRepo:   ledgerRepo,
		logger:       logger,
	}
}

// Dashboard collects store-wide totals for the back office
func (uc *AdminUseCase) Dashboard() (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	counters := []struct {
		name  string
		dest  *int64
		count func() (int64, error)
	}{
		{"count users", &stats.Users, uc.userRepo.Count},
		{"count games", &stats.Games, uc.gameRepo.Count},
		{"count categories", &stats.Categories, uc.categoryRepo.Count},
		{"count reviews", &stats.Reviews, uc.reviewRepo.Count},
		{"count purchases", &stats.Purchases, uc.libraryRepo.Count},
	}
	for _, c := range counters {
		n, err := c.count()
		if err != nil {
			return nil, domain.NewDatabaseError(c.name, err)
		}
		*c.dest = n
	}

	turnover, err := uc.ledgerRepo.Turnover()
	if err != nil {
		return nil, domain.NewDatabaseError("coin turnover", err)
	}
	stats.CoinTurnover = turnover

	return stats, nil
}

// CategorySummaries lists categories with their game counts
func (uc *AdminUseCase) CategorySummaries() ([]*domain.CategorySummary, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, domain.NewDatabaseError("list categories", err)
	}

	summaries := make([]*domain.CategorySummary, 0, len(categories))
	for _, category := range categories {
		count, err := uc.categoryRepo.CountGames(category.ID)
		if err != nil {
			return nil, domain.NewDatabaseError("count category games", err)
		}
		summaries = append(summaries, &domain.CategorySummary{Category: category, Games: count})
	}
	return summaries, nil
}
