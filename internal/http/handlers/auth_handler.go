package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/pressplay/gamestore/internal/domain"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	accountUseCase domain.AccountUseCase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accountUseCase domain.AccountUseCase) *AuthHandler {
	return &AuthHandler{accountUseCase: accountUseCase}
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Email    string `json:"email" binding:"required" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

// LoginRequest represents the login request body. Identifier is a
// username or an email.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required" example:"alice"`
	Password   string `json:"password" binding:"required" example:"secret1"`
}

// LoginResponse represents the login response body
type LoginResponse struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

// UserInfo represents user information exposed over the API
type UserInfo struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email,omitempty"`
	Avatar   string  `json:"avatar,omitempty"`
	Balance  float64 `json:"balance"`
	Coins    int64   `json:"coins"`
	Admin    bool    `json:"admin"`
	Banned   bool    `json:"banned,omitempty"`
}

func newUserInfo(user *domain.User) *UserInfo {
	return &UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Avatar:   user.Avatar,
		Balance:  user.Balance,
		Coins:    user.Coins(),
		Admin:    user.Admin,
		Banned:   user.Banned,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	user, err := h.accountUseCase.Register(req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, "Account created", newUserInfo(user))
}

// Login handles user authentication
// @Summary Log in with username or email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	token, user, err := h.accountUseCase.Login(req.Identifier, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Logged in", LoginResponse{Token: token, User: newUserInfo(user)})
}
