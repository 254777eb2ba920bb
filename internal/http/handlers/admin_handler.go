package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pressplay/gamestore/internal/domain"
)

// AdminHandler handles the management surface: users, games, categories, stats
type AdminHandler struct {
	accountUseCase domain.AccountUseCase
	catalogUseCase domain.CatalogUseCase
	adminUseCase   domain.AdminUseCase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(accountUseCase domain.AccountUseCase, catalogUseCase domain.CatalogUseCase, adminUseCase domain.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		accountUseCase: accountUseCase,
		catalogUseCase: catalogUseCase,
		adminUseCase:   adminUseCase,
	}
}

// GameRequest represents game create/update fields
type GameRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	CoverImage     string  `json:"cover_image"`
	Price          float64 `json:"price" binding:"required"`
	ReleaseDate    string  `json:"release_date"`
	Sale           bool    `json:"sale"`
	SalePercentage int     `json:"sale_percentage"`
	CategoryID     int64   `json:"category_id" binding:"required"`
}

// CategoryRequest represents category create/update fields
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ScreenshotRequest represents a screenshot link
type ScreenshotRequest struct {
	Link string `json:"link" binding:"required"`
}

// BanRequest carries the reason shown to a banned user
type BanRequest struct {
	Reason string `json:"reason"`
}

// UpdateUserRequest represents an admin edit of another user
type UpdateUserRequest struct {
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Admin  *bool  `json:"admin"`
}

func (r GameRequest) toGame(id int64) (*domain.Game, error) {
	releaseDate := time.Now()
	if r.ReleaseDate != "" {
		parsed, err := time.Parse("2006-01-02", r.ReleaseDate)
		if err != nil {
			return nil, domain.NewValidationError("release_date", "expected YYYY-MM-DD")
		}
		releaseDate = parsed
	}

	game := &domain.Game{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		CoverImage:  r.CoverImage,
		Price:       r.Price,
		ReleaseDate: releaseDate,
		Sale:        r.Sale,
		CategoryID:  r.CategoryID,
	}
	if r.Sale {
		game.Percentage = &domain.Percentage{Percent: r.SalePercentage}
	}
	return game, nil
}

// Dashboard returns store-wide totals
// @Summary Admin dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminUseCase.Dashboard()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", stats)
}

// CategorySummaries returns per-category game counts
// @Summary Category summaries
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /admin/categories/summary [get]
func (h *AdminHandler) CategorySummaries(c *gin.Context) {
	summaries, err := h.adminUseCase.CategorySummaries()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", summaries)
}

// ListUsers returns users matching the query filters
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param username query string false "Username search"
// @Param banned query bool false "Only banned or unbanned users"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} Response
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var filter domain.UserFilter
	filter.Username = c.Query("username")
	if v := c.Query("banned"); v != "" {
		banned, err := strconv.ParseBool(v)
		if err != nil {
			respondBadRequest(c, "Invalid banned value")
			return
		}
		filter.Banned = &banned
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	users, err := h.accountUseCase.ListUsers(filter)
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

// GetUser returns one user by ID
// @Summary Get user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /admin/users/{id} [get]
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	user, err := h.accountUseCase.GetUser(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", newUserInfo(user))
}

// UpdateUser edits another user's profile or admin flag
// @Summary Update user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields"
// @Success 200 {object} Response
// @Router /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	user, err := h.accountUseCase.UpdateUser(id, req.Email, req.Avatar, req.Admin)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "User updated", newUserInfo(user))
}

// BanUser bans a user; their reviews disappear from listings but are kept
// @Summary Ban user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body BanRequest true "Ban reason"
// @Success 200 {object} Response
// @Router /admin/users/{id}/ban [post]
func (h *AdminHandler) BanUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	var req BanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	if err := h.accountUseCase.Ban(id, req.Reason); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "User banned", nil)
}

// UnbanUser lifts a ban
// @Summary Unban user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} Response
// @Router /admin/users/{id}/unban [post]
func (h *AdminHandler) UnbanUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	if err := h.accountUseCase.Unban(id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "User unbanned", nil)
}

// DeleteUser removes a user and all rows that reference them
// @Summary Delete user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} Response
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	if err := h.accountUseCase.DeleteUser(id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "User deleted", nil)
}

// CreateGame adds a game to the catalog
// @Summary Create game
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GameRequest true "Game"
// @Success 201 {object} Response
// @Failure 409 {object} Response
// @Router /admin/games [post]
func (h *AdminHandler) CreateGame(c *gin.Context) {
	var req GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	game, err := req.toGame(0)
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.catalogUseCase.CreateGame(game)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Game created", newGameInfo(created))
}

// UpdateGame edits a game
// @Summary Update game
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Param request body GameRequest true "Game"
// @Success 200 {object} Response
// @Router /admin/games/{id} [put]
func (h *AdminHandler) UpdateGame(c *gin.Context) {
	id, ok := gameIDParam(c)
	if !ok {
		return
	}

	var req GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	game, err := req.toGame(id)
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.catalogUseCase.UpdateGame(game)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Game updated", newGameInfo(updated))
}

// DeleteGame removes a game and every cart, wishlist, library, and review row for it
// @Summary Delete game
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Success 200 {object} Response
// @Router /admin/games/{id} [delete]
func (h *AdminHandler) DeleteGame(c *gin.Context) {
	id, ok := gameIDParam(c)
	if !ok {
		return
	}
	if err := h.catalogUseCase.DeleteGame(id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Game deleted", nil)
}

// AddScreenshot attaches a screenshot link to a game
// @Summary Add screenshot
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Param request body ScreenshotRequest true "Screenshot link"
// @Success 201 {object} Response
// @Router /admin/games/{id}/screenshots [post]
func (h *AdminHandler) AddScreenshot(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	var req ScreenshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	screenshot, err := h.catalogUseCase.AddScreenshot(gameID, req.Link)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Screenshot added", screenshot)
}

// DeleteScreenshot removes a screenshot
// @Summary Delete screenshot
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Screenshot ID"
// @Success 200 {object} Response
// @Router /admin/screenshots/{id} [delete]
func (h *AdminHandler) DeleteScreenshot(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid screenshot ID")
		return
	}
	if err := h.catalogUseCase.DeleteScreenshot(id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Screenshot deleted", nil)
}

// CreateCategory adds a category
// @Summary Create category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category"
// @Success 201 {object} Response
// @Failure 409 {object} Response
// @Router /admin/categories [post]
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	category, err := h.catalogUseCase.CreateCategory(req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Category created", category)
}

// UpdateCategory edits a category
// @Summary Update category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body CategoryRequest true "Category"
// @Success 200 {object} Response
// @Router /admin/categories/{id} [put]
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid category ID")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	category, err := h.catalogUseCase.UpdateCategory(id, req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Category updated", category)
}

// DeleteCategory removes an empty category
// @Summary Delete category
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} Response
// @Failure 409 {object} Response
// @Router /admin/categories/{id} [delete]
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid category ID")
		return
	}
	if err := h.catalogUseCase.DeleteCategory(id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Category deleted", nil)
}
