package social

import (
	"github.com/pressplay/gamestore/internal/domain"
	"github.com/pressplay/gamestore/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// SocialUseCase implements domain.SocialUseCase
type SocialUseCase struct {
	friendRepo domain.FriendRepository
	userRepo   domain.UserRepository
	logger     *logger.Logger
}

// NewSocialUseCase creates a new social use case
func NewSocialUseCase(
	friendRepo domain.FriendRepository,
	userRepo domain.UserRepository,
	logger *logger.Logger,
) domain.SocialUseCase {
	return &SocialUseCase{
		friendRepo: friendRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *SocialUseCase) checkUserExists(userID int64) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return domain.NewDatabaseError("get user", err)
	}
	if user == nil {
		return domain.NewNotFoundError("User")
	}
	return nil
}

// SendRequest creates a pending edge toward the recipient. A pending edge
// in the opposite direction is accepted instead of duplicated; an edge
// already pointing the same way is a conflict.
func (uc *SocialUseCase) SendRequest(fromUserID, toUserID int64) (domain.FriendStatus, error) {
	if fromUserID == toUserID {
		return domain.FriendStatusNone, domain.NewConflictError(
			domain.ErrCodeSelfFriendRequest, "You cannot send a friend request to yourself")
	}
	if err := uc.checkUserExists(toUserID); err != nil {
		return domain.FriendStatusNone, err
	}

	forward, err := uc.friendRepo.GetEdge(fromUserID, toUserID)
	if err != nil {
		return domain.FriendStatusNone, domain.NewDatabaseError("get friend edge", err)
	}
	if forward != nil {
		if forward.Accepted {
			return domain.FriendStatusFriends, domain.NewConflictError(
				domain.ErrCodeAlreadyFriends, "You are already friends")
		}
		return domain.FriendStatusPendingOutgoing, domain.NewConflictError(
			domain.ErrCodeFriendRequestExists, "Friend request already sent")
	}

	reverse, err := uc.friendRepo.GetEdge(toUserID, fromUserID)
	if err != nil {
		return domain.FriendStatusNone, domain.NewDatabaseError("get friend edge", err)
	}
	if reverse != nil {
		if reverse.Accepted {
			return domain.FriendStatusFriends, domain.NewConflictError(
				domain.ErrCodeAlreadyFriends, "You are already friends")
		}
		// Mirrored request: accept the existing edge instead of
		// creating a duplicate.
		reverse.Accepted = true
		if err := uc.friendRepo.Update(reverse); err != nil {
			return domain.FriendStatusNone, domain.NewDatabaseError("accept friend edge", err)
		}
		uc.logger.Info("Mirrored friend request auto-accepted",
			zap.Int64("from", fromUserID), zap.Int64("to", toUserID))
		return domain.FriendStatusFriends, nil
	}

	link := &domain.FriendLink{FromUserID: fromUserID, ToUserID: toUserID}
	if err := uc.friendRepo.Create(link); err != nil {
		return domain.FriendStatusNone, domain.NewDatabaseError("create friend edge", err)
	}
	return domain.FriendStatusPendingOutgoing, nil
}

// Accept marks the pending request from fromUserID as accepted
func (uc *SocialUseCase) Accept(userID, fromUserID int64) error {
	edge, err := uc.friendRepo.GetEdge(fromUserID, userID)
	if err != nil {
		return domain.NewDatabaseError("get friend edge", err)
	}
	if edge == nil || edge.Accepted {
		return domain.NewAppError(domain.ErrCodeFriendRequestMissing,
			"No pending friend request from this user", 404, nil)
	}

	edge.Accepted = true
	if err := uc.friendRepo.Update(edge); err != nil {
		return domain.NewDatabaseError("accept friend edge", err)
	}
	return nil
}

// Reject deletes the pending request from fromUserID
func (uc *SocialUseCase) Reject(userID, fromUserID int64) error {
	edge, err := uc.friendRepo.GetEdge(fromUserID, userID)
	if err != nil {
		return domain.NewDatabaseError("get friend edge", err)
	}
	if edge == nil || edge.Accepted {
		return domain.NewAppError(domain.ErrCodeFriendRequestMissing,
			"No pending friend request from this user", 404, nil)
	}

	if err := uc.friendRepo.Delete(edge.ID); err != nil {
		return domain.NewDatabaseError("delete friend edge", err)
	}
	return nil
}

// Remove deletes any edge between the two users, whatever its direction
// or state.
func (uc *SocialUseCase) Remove(userID, otherUserID int64) error {
	if err := uc.friendRepo.DeleteBetween(userID, otherUserID); err != nil {
		return domain.NewDatabaseError("delete friend edges", err)
	}
	return nil
}

// Status reports the relationship from the viewer's perspective
func (uc *SocialUseCase) Status(viewerID, otherUserID int64) (domain.FriendStatus, error) {
	forward, err := uc.friendRepo.GetEdge(viewerID, otherUserID)
	if err != nil {
		return domain.FriendStatusNone, domain.NewDatabaseError("get friend edge", err)
	}
	if forward != nil {
		if forward.Accepted {
			return domain.FriendStatusFriends, nil
		}
		return domain.FriendStatusPendingOutgoing, nil
	}

	reverse, err := uc.friendRepo.GetEdge(otherUserID, viewerID)
	if err != nil {
		return domain.FriendStatusNone, domain.NewDatabaseError("get friend edge", err)
	}
	if reverse != nil {
		if reverse.Accepted {
			return domain.FriendStatusFriends, nil
		}
		return domain.FriendStatusPendingIncoming, nil
	}

	return domain.FriendStatusNone, nil
}

// Friends lists accepted relationships with the linked user loaded
func (uc *SocialUseCase) Friends(userID int64) ([]*domain.Friend, error) {
	links, err := uc.friendRepo.ListAccepted(userID)
	if err != nil {
		return nil, domain.NewDatabaseError("list friends", err)
	}

	friends := make([]*domain.Friend, 0, len(links))
	for _, link := range links {
		otherID := link.FromUserID
		if otherID == userID {
			otherID = link.ToUserID
		}
		other, err := uc.userRepo.GetByID(otherID)
		if err != nil {
			return nil, domain.NewDatabaseError("get friend user", err)
		}
		if other == nil {
			continue
		}
		friends = append(friends, &domain.Friend{User: other, Since: link.CreatedAt})
	}
	return friends, nil
}

// PendingRequests lists users with an outstanding request to userID
func (uc *SocialUseCase) PendingRequests(userID int64) ([]*domain.User, error) {
	links, err := uc.friendRepo.ListIncomingPending(userID)
	if err != nil {
		return nil, domain.NewDatabaseError("list pending requests", err)
	}

	users := make([]*domain.User, 0, len(links))
	for _, link := range links {
		sender, err := uc.userRepo.GetByID(link.FromUserID)
		if err != nil {
			return nil, domain.NewDatabaseError("get sender", err)
		}
		if sender == nil {
			continue
		}
		users = append(users, sender)
	}
	return users, nil
}
