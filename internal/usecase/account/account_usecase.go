package account

import (
	"fmt"
	"net/mail"
	"regexp"

	"github.com/pressplay/gamestore/internal/domain"
	"github.com/pressplay/gamestore/internal/infrastructure/auth"
	"github.com/pressplay/gamestore/internal/infrastructure/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

// AccountUseCase implements domain.AccountUseCase
type AccountUseCase struct {
	userRepo     domain.UserRepository
	cartRepo     domain.CartRepository
	wishlistRepo domain.WishlistRepository
	libraryRepo  domain.LibraryRepository
	reviewRepo   domain.ReviewRepository
	friendRepo   domain.FriendRepository
	ledgerRepo   domain.LedgerRepository
	jwtSvc       auth.JWTService
	db           *gorm.DB
	logger       *logger.Logger
}

// NewAccountUseCase creates a new account use case
func NewAccountUseCase(
	userRepo domain.UserRepository,
	cartRepo domain.CartRepository,
	wishlistRepo domain.WishlistRepository,
	libraryRepo domain.LibraryRepository,
	reviewRepo domain.ReviewRepository,
	friendRepo domain.FriendRepository,
	ledgerRepo domain.LedgerRepository,
	jwtSvc auth.JWTService,
	db *gorm.DB,
	logger *logger.Logger,
) domain.AccountUseCase {
	return &AccountUseCase{
		userRepo:     userRepo,
		cartRepo:     cartRepo,
		wishlistRepo: wishlistRepo,
		libraryRepo:  libraryRepo,
		reviewRepo:   reviewRepo,
		friendRepo:   friendRepo,
		ledgerRepo:   ledgerRepo,
		jwtSvc:       jwtSvc,
		db:           db,
		logger:       logger,
	}
}

// Register validates input, checks uniqueness and creates the user with a
// zero balance.
func (uc *AccountUseCase) Register(username, email, password string) (*domain.User, error) {
	if !usernamePattern.MatchString(username) {
		return nil, domain.NewValidationError("username", "must be 3-20 alphanumeric characters or underscores")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.NewValidationError("email", "must be a valid email address")
	}
	if len(password) < 6 {
		return nil, domain.NewValidationError("password", "must be at least 6 characters")
	}

	existing, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return nil, domain.NewDatabaseError("check username", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError(domain.ErrCodeUsernameTaken, "Username is already taken")
	}

	existing, err = uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, domain.NewDatabaseError("check email", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError(domain.ErrCodeEmailTaken, "Email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewInternalError("Failed to hash password", err)
	}

	user := &domain.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Balance:  0,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, domain.NewDatabaseError("create user", err)
	}

	uc.logger.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", username))

	return user, nil
}

// Login resolves the identifier as a username first, then as an email, and
// verifies the password against the stored bcrypt hash.
func (uc *AccountUseCase) Login(identifier, password string) (string, *domain.User, error) {
	if identifier == "" || password == "" {
		return "", nil, domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
	}

	user, err := uc.userRepo.GetByUsername(identifier)
	if err != nil {
		return "", nil, domain.NewDatabaseError("get user by username", err)
	}
	if user == nil {
		user, err = uc.userRepo.GetByEmail(identifier)
		if err != nil {
			return "", nil, domain.NewDatabaseError("get user by email", err)
		}
	}
	if user == nil {
		return "", nil, domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		uc.logger.Warn("Login failed, password mismatch", zap.Int64("user_id", user.ID))
		return "", nil, domain.NewAppError(domain.ErrCodeInvalidCredentials, "Invalid credentials", 401, nil)
	}

	if user.Banned {
		return "", nil, domain.NewAppError(domain.ErrCodeUserBanned,
			fmt.Sprintf("Account banned: %s", user.BanReason), 403, nil)
	}

	token, err := uc.jwtSvc.GenerateToken(user.ID, user.Username, user.Admin)
	if err != nil {
		return "", nil, domain.NewAppError(domain.ErrCodeTokenInvalid, "Token generation failed", 500, err)
	}

	uc.logger.Info("User logged in", zap.Int64("user_id", user.ID))
	return token, user, nil
}

// GetUser retrieves a user by ID
func (uc *AccountUseCase) GetUser(userID int64) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, domain.NewDatabaseError("get user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User")
	}
	return user, nil
}

// UpdateProfile updates the user's email and avatar with an email
// uniqueness re-check.
func (uc *AccountUseCase) UpdateProfile(userID int64, email, avatar string) (*domain.User, error) {
	user, err := uc.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if email != "" && email != user.Email {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, domain.NewValidationError("email", "must be a valid email address")
		}
		existing, err := uc.userRepo.GetByEmail(email)
		if err != nil {
			return nil, domain.NewDatabaseError("check email", err)
		}
		if existing != nil && existing.ID != userID {
			return nil, domain.NewConflictError(domain.ErrCodeEmailTaken, "Email is already registered")
		}
		user.Email = email
	}
	if avatar != "" {
		user.Avatar = avatar
	}

	if err := uc.userRepo.Update(user); err != nil {
		return nil, domain.NewDatabaseError("update user", err)
	}
	return user, nil
}

// ChangePassword verifies the old password and stores a new hash
func (uc *AccountUseCase) ChangePassword(userID int64, oldPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return domain.NewValidationError("password", "must be at least 6 characters")
	}

	user, err := uc.GetUser(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return domain.NewAppError(domain.ErrCodeInvalidCredentials, "Current password is incorrect", 401, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.NewInternalError("Failed to hash password", err)
	}
	user.Password = string(hash)

	if err := uc.userRepo.Update(user); err != nil {
		return domain.NewDatabaseError("update password", err)
	}
	return nil
}

// ListUsers retrieves users for the admin back office
func (uc *AccountUseCase) ListUsers(filter domain.UserFilter) ([]*domain.User, error) {
	users, err := uc.userRepo.List(filter)
	if err != nil {
		return nil, domain.NewDatabaseError("list users", err)
	}
	return users, nil
}

// UpdateUser applies admin edits to a user
func (uc *AccountUseCase) UpdateUser(userID int64, email, avatar string, admin *bool) (*domain.User, error) {
	user, err := uc.UpdateProfile(userID, email, avatar)
	if err != nil {
		return nil, err
	}
	if admin != nil && *admin != user.Admin {
		user.Admin = *admin
		if err := uc.userRepo.Update(user); err != nil {
			return nil, domain.NewDatabaseError("update user", err)
		}
	}
	return user, nil
}

// Ban flags a user as banned. Their reviews stay in the table but drop out
// of listings and statistics.
func (uc *AccountUseCase) Ban(userID int64, reason string) error {
	user, err := uc.GetUser(userID)
	if err != nil {
		return err
	}
	user.Banned = true
	user.BanReason = reason
	if err := uc.userRepo.Update(user); err != nil {
		return domain.NewDatabaseError("ban user", err)
	}
	uc.logger.Info("User banned", zap.Int64("user_id", userID), zap.String("reason", reason))
	return nil
}

// Unban clears the banned flag
func (uc *AccountUseCase) Unban(userID int64) error {
	user, err := uc.GetUser(userID)
	if err != nil {
		return err
	}
	user.Banned = false
	user.BanReason = ""
	if err := uc.userRepo.Update(user); err != nil {
		return domain.NewDatabaseError("unban user", err)
	}
	return nil
}

// DeleteUser removes the user and every dependent row in one transaction.
// A failure anywhere rolls the whole sequence back.
func (uc *AccountUseCase) DeleteUser(userID int64) error {
	user, err := uc.GetUser(userID)
	if err != nil {
		return err
	}

	tx := uc.db.Begin()
	if tx.Error != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	steps := []struct {
		name string
		run  func() error
	}{
		{"delete cart", func() error { return uc.cartRepo.WithTransaction(tx).DeleteByUser(userID) }},
		{"delete wishlist", func() error { return uc.wishlistRepo.WithTransaction(tx).DeleteByUser(userID) }},
		{"delete library", func() error { return uc.libraryRepo.WithTransaction(tx).DeleteByUser(userID) }},
		{"delete reviews", func() error { return uc.reviewRepo.WithTransaction(tx).DeleteByUser(userID) }},
		{"delete friend links", func() error { return uc.friendRepo.WithTransaction(tx).DeleteByUser(userID) }},
		{"delete user", func() error { return uc.userRepo.WithTransaction(tx).Delete(userID) }},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			tx.Rollback()
			return domain.NewDatabaseError(step.name, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("User deleted", zap.Int64("user_id", userID), zap.String("username", user.Username))
	return nil
}
