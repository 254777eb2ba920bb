package account

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pressplay/gamestore/internal/domain"
	"github.com/pressplay/gamestore/internal/domain/mocks"
	"github.com/pressplay/gamestore/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestAccountUseCase(ctrl *gomock.Controller) (*AccountUseCase, *mocks.MockUserRepository, *mocks.MockJWTService) {
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockJWT := mocks.NewMockJWTService(ctrl)

	uc := &AccountUseCase{
		userRepo: mockUserRepo,
		jwtSvc:   mockJWT,
		logger:   logger.NewLogger("test", "debug"),
	}
	return uc, mockUserRepo, mockJWT
}

func createTestUser() *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	return &domain.User{
		ID:       42,
		Username: "player_one",
		Email:    "player@example.com",
		Password: string(hash),
		Balance:  10,
		JoinDate: time.Now(),
	}
}

func TestRegisterValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _ := newTestAccountUseCase(ctrl)

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"Username_Too_Short", "ab", "a@b.com", "secret123"},
		{"Username_Too_Long", "abcdefghijklmnopqrstu", "a@b.com", "secret123"},
		{"Username_Bad_Characters", "no spaces!", "a@b.com", "secret123"},
		{"Invalid_Email", "player_one", "not-an-email", "secret123"},
		{"Password_Too_Short", "player_one", "a@b.com", "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := uc.Register(tt.username, tt.email, tt.password)
			assert.Nil(t, user)
			assert.Error(t, err)

			appErr, ok := domain.IsAppError(err)
			assert.True(t, ok)
			assert.Equal(t, domain.ErrCodeValidation, appErr.Code)
		})
	}
}

func TestRegisterUniqueness(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockUserRepo, _ := newTestAccountUseCase(ctrl)
	taken := createTestUser()

	t.Run("Username_Taken", func(t *testing.T) {
		mockUserRepo.EXPECT().GetByUsername("player_one").Return(taken, nil)

		user, err := uc.Register("player_one", "new@example.com", "secret123")
		assert.Nil(t, user)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeUsernameTaken, appErr.Code)
	})

	t.Run("Email_Taken", func(t *testing.T) {
		mockUserRepo.EXPECT().GetByUsername("newcomer").Return(nil, nil)
		mockUserRepo.EXPECT().GetByEmail("player@example.com").Return(taken, nil)

		user, err := uc.Register("newcomer", "player@example.com", "secret123")
		assert.Nil(t, user)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeEmailTaken, appErr.Code)
	})
}

func TestRegisterSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockUserRepo, _ := newTestAccountUseCase(ctrl)

	mockUserRepo.EXPECT().GetByUsername("newcomer").Return(nil, nil)
	mockUserRepo.EXPECT().GetByEmail("new@example.com").Return(nil, nil)
	mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *domain.User) error {
		assert.Equal(t, "newcomer", u.Username)
		assert.Equal(t, float64(0), u.Balance)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")))
		return nil
	})

	user, err := uc.Register("newcomer", "new@example.com", "secret123")
	assert.NoError(t, err)
	assert.NotNil(t, user)
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("By_Username", func(t *testing.T) {
		uc, mockUserRepo, mockJWT := newTestAccountUseCase(ctrl)
		user := createTestUser()

		mockUserRepo.EXPECT().GetByUsername("player_one").Return(user, nil)
		mockJWT.EXPECT().GenerateToken(user.ID, user.Username, false).Return("token123", nil)

		token, got, err := uc.Login("player_one", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, "token123", token)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("By_Email_Fallback", func(t *testing.T) {
		uc, mockUserRepo, mockJWT := newTestAccountUseCase(ctrl)
		user := createTestUser()

		mockUserRepo.EXPECT().GetByUsername("player@example.com").Return(nil, nil)
		mockUserRepo.EXPECT().GetByEmail("player@example.com").Return(user, nil)
		mockJWT.EXPECT().GenerateToken(user.ID, user.Username, false).Return("token123", nil)

		token, _, err := uc.Login("player@example.com", "secret123")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Wrong_Password", func(t *testing.T) {
		uc, mockUserRepo, _ := newTestAccountUseCase(ctrl)
		user := createTestUser()

		mockUserRepo.EXPECT().GetByUsername("player_one").Return(user, nil)

		_, _, err := uc.Login("player_one", "wrong")
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidCredentials, appErr.Code)
	})

	t.Run("Unknown_User", func(t *testing.T) {
		uc, mockUserRepo, _ := newTestAccountUseCase(ctrl)

		mockUserRepo.EXPECT().GetByUsername("ghost").Return(nil, nil)
		mockUserRepo.EXPECT().GetByEmail("ghost").Return(nil, nil)

		_, _, err := uc.Login("ghost", "secret123")
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidCredentials, appErr.Code)
	})

	t.Run("Banned_User", func(t *testing.T) {
		uc, mockUserRepo, _ := newTestAccountUseCase(ctrl)
		user := createTestUser()
		user.Banned = true
		user.BanReason = "spam"

		mockUserRepo.EXPECT().GetByUsername("player_one").Return(user, nil)

		_, _, err := uc.Login("player_one", "secret123")
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeUserBanned, appErr.Code)
		assert.Equal(t, 403, appErr.HTTPStatus)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Email_Conflict", func(t *testing.T) {
		uc, mockUserRepo, _ := newTestAccountUseCase(ctrl)
		user := createTestUser()
		other := &domain.User{ID: 99, Email: "taken@example.com"}

		mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
		mockUserRepo.EXPECT().GetByEmail("taken@example.com").Return(other, nil)

		_, err := uc.UpdateProfile(user.ID, "taken@example.com", "")
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeEmailTaken, appErr.Code)
	})

	t.Run("Avatar_Only", func(t *testing.T) {
		uc, mockUserRepo, _ := newTestAccountUseCase(ctrl)
		user := createTestUser()

		mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
		mockUserRepo.EXPECT().Update(gomock.Any()).Return(nil)

		updated, err := uc.UpdateProfile(user.ID, "", "avatars/new.png")
		assert.NoError(t, err)
		assert.Equal(t, "avatars/new.png", updated.Avatar)
	})
}

func TestChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Wrong_Old_Password", func(t *testing.T) {
		uc, mockUserRepo, _ := newTestAccountUseCase(ctrl)
		user := createTestUser()

		mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)

		err := uc.ChangePassword(user.ID, "wrong", "newsecret")
		assert.Error(t, err)
	})

	t.Run("Success", func(t *testing.T) {
		uc, mockUserRepo, _ := newTestAccountUseCase(ctrl)
		user := createTestUser()

		mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
		mockUserRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(u *domain.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newsecret")))
			return nil
		})

		err := uc.ChangePassword(user.ID, "secret123", "newsecret")
		assert.NoError(t, err)
	})
}

func TestBanAndUnban(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Ban_Sets_Reason", func(t *testing.T) {
		uc, mockUserRepo, _ := newTestAccountUseCase(ctrl)
		user := createTestUser()

		mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
		mockUserRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(u *domain.User) error {
			assert.True(t, u.Banned)
			assert.Equal(t, "abusive reviews", u.BanReason)
			return nil
		})

		assert.NoError(t, uc.Ban(user.ID, "abusive reviews"))
	})

	t.Run("Unban_Clears_Reason", func(t *testing.T) {
		uc, mockUserRepo, _ := newTestAccountUseCase(ctrl)
		user := createTestUser()
		user.Banned = true
		user.BanReason = "spam"

		mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
		mockUserRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(u *domain.User) error {
			assert.False(t, u.Banned)
			assert.Empty(t, u.BanReason)
			return nil
		})

		assert.NoError(t, uc.Unban(user.ID))
	})

	t.Run("Ban_Unknown_User", func(t *testing.T) {
		uc, mockUserRepo, _ := newTestAccountUseCase(ctrl)

		mockUserRepo.EXPECT().GetByID(int64(777)).Return(nil, nil)

		err := uc.Ban(777, "spam")
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNotFound, appErr.Code)
	})
}

func TestAddCoinsBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _ := newTestAccountUseCase(ctrl)

	tests := []struct {
		name  string
		coins int64
	}{
		{"Zero", 0},
		{"Negative", -5},
		{"Above_Maximum", MaxTopUpCoins + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := uc.AddCoins(42, tt.coins)
			assert.Nil(t, user)
			assert.Error(t, err)

			appErr, ok := domain.IsAppError(err)
			assert.True(t, ok)
			assert.Equal(t, domain.ErrCodeValidation, appErr.Code)
		})
	}
}

func TestGetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Not_Found", func(t *testing.T) {
		uc, mockUserRepo, _ := newTestAccountUseCase(ctrl)
		mockUserRepo.EXPECT().GetByID(int64(7)).Return(nil, nil)

		user, err := uc.GetUser(7)
		assert.Nil(t, user)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Database_Error", func(t *testing.T) {
		uc, mockUserRepo, _ := newTestAccountUseCase(ctrl)
		mockUserRepo.EXPECT().GetByID(int64(7)).Return(nil, errors.New("connection reset"))

		_, err := uc.GetUser(7)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeDatabaseQuery, appErr.Code)
	})
}
