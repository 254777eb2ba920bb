package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pressplay/gamestore/internal/domain"
	"github.com/pressplay/gamestore/internal/http/middleware"
)

// FriendHandler handles friend requests and friend lists
type FriendHandler struct {
	socialUseCase domain.SocialUseCase
}

// NewFriendHandler creates a new friend handler
func NewFriendHandler(socialUseCase domain.SocialUseCase) *FriendHandler {
	return &FriendHandler{socialUseCase: socialUseCase}
}

func userIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid user ID")
		return 0, false
	}
	return id, true
}

// SendRequest sends a friend request, auto-accepting a mirrored pending one
// @Summary Send friend request
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path int true "Target user ID"
// @Success 200 {object} Response
// @Failure 409 {object} Response
// @Router /friends/requests/{id} [post]
func (h *FriendHandler) SendRequest(c *gin.Context) {
	toUserID, ok := userIDParam(c)
	if !ok {
		return
	}

	status, err := h.socialUseCase.SendRequest(middleware.UserID(c), toUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Friend request sent"
	if status == domain.FriendStatusFriends {
		message = "Friend request accepted"
	}
	respondOK(c, message, gin.H{"status": status})
}

// Accept accepts a pending incoming friend request
// @Summary Accept friend request
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path int true "Requesting user ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /friends/requests/{id} [put]
func (h *FriendHandler) Accept(c *gin.Context) {
	fromUserID, ok := userIDParam(c)
	if !ok {
		return
	}
	if err := h.socialUseCase.Accept(middleware.UserID(c), fromUserID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Friend request accepted", nil)
}

// Reject declines a pending incoming friend request
// @Summary Reject friend request
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path int true "Requesting user ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /friends/requests/{id} [delete]
func (h *FriendHandler) Reject(c *gin.Context) {
	fromUserID, ok := userIDParam(c)
	if !ok {
		return
	}
	if err := h.socialUseCase.Reject(middleware.UserID(c), fromUserID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Friend request rejected", nil)
}

// Remove ends a friendship in both directions
// @Summary Remove friend
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path int true "Friend user ID"
// @Success 200 {object} Response
// @Router /friends/{id} [delete]
func (h *FriendHandler) Remove(c *gin.Context) {
	otherUserID, ok := userIDParam(c)
	if !ok {
		return
	}
	if err := h.socialUseCase.Remove(middleware.UserID(c), otherUserID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Friend removed", nil)
}

// Status reports the friendship state between the caller and another user
// @Summary Get friendship status
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path int true "Other user ID"
// @Success 200 {object} Response
// @Router /friends/{id}/status [get]
func (h *FriendHandler) Status(c *gin.Context) {
	otherUserID, ok := userIDParam(c)
	if !ok {
		return
	}
	status, err := h.socialUseCase.Status(middleware.UserID(c), otherUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", gin.H{"status": status})
}

// List returns the caller's accepted friends
// @Summary List friends
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /friends [get]
func (h *FriendHandler) List(c *gin.Context) {
	friends, err := h.socialUseCase.Friends(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", friends)
}

// PendingRequests returns users with an open request to the caller
// @Summary List pending friend requests
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /friends/requests [get]
func (h *FriendHandler) PendingRequests(c *gin.Context) {
	users, err := h.socialUseCase.PendingRequests(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	infos := make([]*UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, newUserInfo(u))
	}
	respondOK(c, "", infos)
}
