package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/pressplay/gamestore/internal/domain"
	"github.com/pressplay/gamestore/internal/http/middleware"
)

// UserHandler handles requests about the authenticated user
type UserHandler struct {
	accountUseCase domain.AccountUseCase
}

// NewUserHandler creates a new user handler
func NewUserHandler(accountUseCase domain.AccountUseCase) *UserHandler {
	return &UserHandler{accountUseCase: accountUseCase}
}

// UpdateProfileRequest represents a profile edit
type UpdateProfileRequest struct {
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// ChangePasswordRequest represents a password change
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// AddCoinsRequest represents a coin top-up
type AddCoinsRequest struct {
	Coins int64 `json:"coins" binding:"required" example:"1000"`
}

// Me returns the authenticated user's profile
// @Summary Get current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.accountUseCase.GetUser(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", newUserInfo(user))
}

// UpdateMe edits the authenticated user's profile
// @Summary Update profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} Response
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	user, err := h.accountUseCase.UpdateProfile(middleware.UserID(c), req.Email, req.Avatar)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Profile updated", newUserInfo(user))
}

// ChangePassword replaces the authenticated user's password
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Passwords"
// @Success 200 {object} Response
// @Router /users/me/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	if err := h.accountUseCase.ChangePassword(middleware.UserID(c), req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Password changed", nil)
}

// AddCoins credits the authenticated user's balance
// @Summary Top up coins
// @Description Accepts 1 to 100000 coins per request
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddCoinsRequest true "Coin amount"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /users/me/coins [post]
func (h *UserHandler) AddCoins(c *gin.Context) {
	var req AddCoinsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	user, err := h.accountUseCase.AddCoins(middleware.UserID(c), req.Coins)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Coins added", newUserInfo(user))
}
