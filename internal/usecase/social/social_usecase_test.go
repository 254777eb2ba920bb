package social

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pressplay/gamestore/internal/domain"
	"github.com/pressplay/gamestore/internal/domain/mocks"
	"github.com/pressplay/gamestore/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

func newTestSocialUseCase(ctrl *gomock.Controller) (*SocialUseCase, *mocks.MockFriendRepository, *mocks.MockUserRepository) {
	mockFriendRepo := mocks.NewMockFriendRepository(ctrl)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)

	uc := &SocialUseCase{
		friendRepo: mockFriendRepo,
		userRepo:   mockUserRepo,
		logger:     logger.NewLogger("test", "debug"),
	}
	return uc, mockFriendRepo, mockUserRepo
}

func TestSendRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	other := &domain.User{ID: 2, Username: "bob"}

	t.Run("Self_Request_Rejected", func(t *testing.T) {
		uc, _, _ := newTestSocialUseCase(ctrl)

		_, err := uc.SendRequest(1, 1)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeSelfFriendRequest, appErr.Code)
	})

	t.Run("Unknown_Recipient", func(t *testing.T) {
		uc, _, mockUserRepo := newTestSocialUseCase(ctrl)

		mockUserRepo.EXPECT().GetByID(int64(404)).Return(nil, nil)

		_, err := uc.SendRequest(1, 404)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Creates_Pending_Edge", func(t *testing.T) {
		uc, mockFriendRepo, mockUserRepo := newTestSocialUseCase(ctrl)

		mockUserRepo.EXPECT().GetByID(other.ID).Return(other, nil)
		mockFriendRepo.EXPECT().GetEdge(int64(1), other.ID).Return(nil, nil)
		mockFriendRepo.EXPECT().GetEdge(other.ID, int64(1)).Return(nil, nil)
		mockFriendRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(link *domain.FriendLink) error {
			assert.Equal(t, int64(1), link.FromUserID)
			assert.Equal(t, other.ID, link.ToUserID)
			assert.False(t, link.Accepted)
			return nil
		})

		status, err := uc.SendRequest(1, other.ID)
		assert.NoError(t, err)
		assert.Equal(t, domain.FriendStatusPendingOutgoing, status)
	})

	t.Run("Duplicate_Request_Conflict", func(t *testing.T) {
		uc, mockFriendRepo, mockUserRepo := newTestSocialUseCase(ctrl)

		mockUserRepo.EXPECT().GetByID(other.ID).Return(other, nil)
		mockFriendRepo.EXPECT().GetEdge(int64(1), other.ID).
			Return(&domain.FriendLink{FromUserID: 1, ToUserID: other.ID}, nil)

		_, err := uc.SendRequest(1, other.ID)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeFriendRequestExists, appErr.Code)
	})

	t.Run("Already_Friends_Conflict", func(t *testing.T) {
		uc, mockFriendRepo, mockUserRepo := newTestSocialUseCase(ctrl)

		mockUserRepo.EXPECT().GetByID(other.ID).Return(other, nil)
		mockFriendRepo.EXPECT().GetEdge(int64(1), other.ID).
			Return(&domain.FriendLink{FromUserID: 1, ToUserID: other.ID, Accepted: true}, nil)

		_, err := uc.SendRequest(1, other.ID)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeAlreadyFriends, appErr.Code)
	})

	t.Run("Mirrored_Request_Auto_Accepts", func(t *testing.T) {
		uc, mockFriendRepo, mockUserRepo := newTestSocialUseCase(ctrl)
		reverse := &domain.FriendLink{ID: 9, FromUserID: other.ID, ToUserID: 1}

		mockUserRepo.EXPECT().GetByID(other.ID).Return(other, nil)
		mockFriendRepo.EXPECT().GetEdge(int64(1), other.ID).Return(nil, nil)
		mockFriendRepo.EXPECT().GetEdge(other.ID, int64(1)).Return(reverse, nil)
		mockFriendRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(link *domain.FriendLink) error {
			assert.True(t, link.Accepted)
			return nil
		})

		status, err := uc.SendRequest(1, other.ID)
		assert.NoError(t, err)
		assert.Equal(t, domain.FriendStatusFriends, status)
	})
}

func TestAcceptAndReject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Accept_Pending", func(t *testing.T) {
		uc, mockFriendRepo, _ := newTestSocialUseCase(ctrl)
		edge := &domain.FriendLink{ID: 9, FromUserID: 2, ToUserID: 1}

		mockFriendRepo.EXPECT().GetEdge(int64(2), int64(1)).Return(edge, nil)
		mockFriendRepo.EXPECT().Update(gomock.Any()).Return(nil)

		assert.NoError(t, uc.Accept(1, 2))
	})

	t.Run("Accept_Missing_Request", func(t *testing.T) {
		uc, mockFriendRepo, _ := newTestSocialUseCase(ctrl)

		mockFriendRepo.EXPECT().GetEdge(int64(2), int64(1)).Return(nil, nil)

		err := uc.Accept(1, 2)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeFriendRequestMissing, appErr.Code)
		assert.Equal(t, 404, appErr.HTTPStatus)
	})

	t.Run("Accept_Already_Accepted", func(t *testing.T) {
		uc, mockFriendRepo, _ := newTestSocialUseCase(ctrl)
		edge := &domain.FriendLink{ID: 9, FromUserID: 2, ToUserID: 1, Accepted: true}

		mockFriendRepo.EXPECT().GetEdge(int64(2), int64(1)).Return(edge, nil)

		err := uc.Accept(1, 2)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeFriendRequestMissing, appErr.Code)
	})

	t.Run("Reject_Deletes_Edge", func(t *testing.T) {
		uc, mockFriendRepo, _ := newTestSocialUseCase(ctrl)
		edge := &domain.FriendLink{ID: 9, FromUserID: 2, ToUserID: 1}

		mockFriendRepo.EXPECT().GetEdge(int64(2), int64(1)).Return(edge, nil)
		mockFriendRepo.EXPECT().Delete(edge.ID).Return(nil)

		assert.NoError(t, uc.Reject(1, 2))
	})
}

func TestStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		forward  *domain.FriendLink
		reverse  *domain.FriendLink
		expected domain.FriendStatus
	}{
		{
			name:     "None",
			expected: domain.FriendStatusNone,
		},
		{
			name:     "Outgoing_Pending",
			forward:  &domain.FriendLink{FromUserID: 1, ToUserID: 2},
			expected: domain.FriendStatusPendingOutgoing,
		},
		{
			name:     "Incoming_Pending",
			reverse:  &domain.FriendLink{FromUserID: 2, ToUserID: 1},
			expected: domain.FriendStatusPendingIncoming,
		},
		{
			name:     "Friends_Forward",
			forward:  &domain.FriendLink{FromUserID: 1, ToUserID: 2, Accepted: true},
			expected: domain.FriendStatusFriends,
		},
		{
			name:     "Friends_Reverse",
			reverse:  &domain.FriendLink{FromUserID: 2, ToUserID: 1, Accepted: true},
			expected: domain.FriendStatusFriends,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mockFriendRepo, _ := newTestSocialUseCase(ctrl)

			mockFriendRepo.EXPECT().GetEdge(int64(1), int64(2)).Return(tt.forward, nil)
			if tt.forward == nil {
				mockFriendRepo.EXPECT().GetEdge(int64(2), int64(1)).Return(tt.reverse, nil)
			}

			status, err := uc.Status(1, 2)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestFriendsListsBothDirections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockFriendRepo, mockUserRepo := newTestSocialUseCase(ctrl)

	links := []*domain.FriendLink{
		{ID: 1, FromUserID: 1, ToUserID: 2, Accepted: true},
		{ID: 2, FromUserID: 3, ToUserID: 1, Accepted: true},
	}
	mockFriendRepo.EXPECT().ListAccepted(int64(1)).Return(links, nil)
	mockUserRepo.EXPECT().GetByID(int64(2)).Return(&domain.User{ID: 2, Username: "bob"}, nil)
	mockUserRepo.EXPECT().GetByID(int64(3)).Return(&domain.User{ID: 3, Username: "carol"}, nil)

	friends, err := uc.Friends(1)
	assert.NoError(t, err)
	assert.Len(t, friends, 2)
	assert.Equal(t, int64(2), friends[0].User.ID)
	assert.Equal(t, int64(3), friends[1].User.ID)
}
