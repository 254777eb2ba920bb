package seeder

import (
	"log"
	"time"

	"github.com/pressplay/gamestore/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Seeder handles database seeding operations
type Seeder struct {
	userRepo       domain.UserRepository
	categoryRepo   domain.CategoryRepository
	percentageRepo domain.PercentageRepository
	gameRepo       domain.GameRepository
}

// NewSeeder creates a new seeder instance
func NewSeeder(
	userRepo domain.UserRepository,
	categoryRepo domain.CategoryRepository,
	percentageRepo domain.PercentageRepository,
	gameRepo domain.GameRepository,
) *Seeder {
	return &Seeder{
		userRepo:       userRepo,
		categoryRepo:   categoryRepo,
		percentageRepo: percentageRepo,
		gameRepo:       gameRepo,
	}
}

// SeedAll runs every seeding step in dependency order
func (s *Seeder) SeedAll() error {
	if err := s.SeedUsers(); err != nil {
		return err
	}
	if err := s.SeedCatalog(); err != nil {
		return err
	}
	return nil
}

// SeedUsers seeds the database with initial users
func (s *Seeder) SeedUsers() error {
	log.Printf("Seeding users...")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	passwordHash := string(hash)

	users := []struct {
		username string
		email    string
		admin    bool
		balance  float64
	}{
		{"admin", "admin@gamestore.local", true, 1000},
		{"alice", "alice@example.com", false, 250},
		{"bob", "bob@example.com", false, 80},
		{"carol", "carol@example.com", false, 0},
	}

	for _, u := range users {
		existing, err := s.userRepo.GetByUsername(u.username)
		if err != nil {
			log.Printf("Error checking existing user, skipping.")
			continue
		}
		if existing != nil {
			log.Printf("User already exists, skipping.")
			continue
		}

		user := &domain.User{
			Username: u.username,
			Email:    u.email,
			Password: passwordHash,
			Admin:    u.admin,
			Balance:  u.balance,
			JoinDate: time.Now(),
		}
		if err := s.userRepo.Create(user); err != nil {
			log.Printf("Error creating user.")
			return err
		}
	}

	log.Printf("User seeding completed successfully")
	return nil
}

// SeedCatalog seeds categories, discounts and a starter set of games
func (s *Seeder) SeedCatalog() error {
	log.Printf("Seeding catalog...")

	categories := []domain.Category{
		{Name: "Action", Description: "Fast-paced games built around combat and reflexes"},
		{Name: "Adventure", Description: "Story-driven exploration games"},
		{Name: "Strategy", Description: "Games about planning and outsmarting opponents"},
		{Name: "RPG", Description: "Role-playing games with character progression"},
	}
	categoryIDs := make(map[string]int64, len(categories))
	for i := range categories {
		existing, err := s.categoryRepo.GetByName(categories[i].Name)
		if err != nil {
			return err
		}
		if existing != nil {
			categoryIDs[existing.Name] = existing.ID
			continue
		}
		if err := s.categoryRepo.Create(&categories[i]); err != nil {
			return err
		}
		categoryIDs[categories[i].Name] = categories[i].ID
	}

	halfOff, err := s.percentageRepo.GetOrCreate(50)
	if err != nil {
		return err
	}
	thirdOff, err := s.percentageRepo.GetOrCreate(30)
	if err != nil {
		return err
	}

	games := []struct {
		name        string
		description string
		price       float64
		category    string
		sale        *domain.Percentage
	}{
		{"Starfall Siege", "Defend the last orbital station against endless waves.", 29.99, "Action", halfOff},
		{"Mistwood Tales", "A hand-painted journey through a forest that remembers.", 19.99, "Adventure", nil},
		{"Crown and Cannon", "Turn-based empire building across a fractured continent.", 39.99, "Strategy", thirdOff},
		{"Emberborn", "Forge a hero from the ashes of a fallen kingdom.", 49.99, "RPG", nil},
	}

	for _, g := range games {
		existing, err := s.gameRepo.GetByName(g.name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		game := &domain.Game{
			Name:        g.name,
			Description: g.description,
			Price:       g.price,
			ReleaseDate: time.Now(),
			CategoryID:  categoryIDs[g.category],
		}
		if g.sale != nil {
			game.Sale = true
			game.PercentageID = &g.sale.ID
		}
		if err := s.gameRepo.Create(game); err != nil {
			return err
		}
	}

	log.Printf("Catalog seeding completed successfully")
	return nil
}
