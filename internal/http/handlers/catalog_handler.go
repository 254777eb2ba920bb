package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pressplay/gamestore/internal/domain"
)

// CatalogHandler serves the public game catalog
type CatalogHandler struct {
	catalogUseCase domain.CatalogUseCase
	storeUseCase   domain.StoreUseCase
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUseCase domain.CatalogUseCase, storeUseCase domain.StoreUseCase) *CatalogHandler {
	return &CatalogHandler{catalogUseCase: catalogUseCase, storeUseCase: storeUseCase}
}

// GameInfo is the catalog view of a game, including the derived sale price
type GameInfo struct {
	*domain.Game
	EffectivePrice float64 `json:"effective_price"`
}

func newGameInfo(game *domain.Game) *GameInfo {
	return &GameInfo{Game: game, EffectivePrice: game.EffectivePrice()}
}

func newGameInfoList(games []*domain.Game) []*GameInfo {
	infos := make([]*GameInfo, 0, len(games))
	for _, g := range games {
		infos = append(infos, newGameInfo(g))
	}
	return infos
}

// ListGames returns games matching the query filters
// @Summary List games
// @Tags catalog
// @Produce json
// @Param category query int false "Category ID"
// @Param on_sale query bool false "Only games on sale"
// @Param price_min query number false "Minimum base price"
// @Param price_max query number false "Maximum base price"
// @Param search query string false "Name search"
// @Param sort query string false "Sort field (name, price, release_date)"
// @Param order query string false "asc or desc"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} Response
// @Router /games [get]
func (h *CatalogHandler) ListGames(c *gin.Context) {
	var filter domain.GameFilter

	if v := c.Query("category"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			respondBadRequest(c, "Invalid category ID")
			return
		}
		filter.CategoryID = &id
	}
	if v := c.Query("on_sale"); v != "" {
		onSale, err := strconv.ParseBool(v)
		if err != nil {
			respondBadRequest(c, "Invalid on_sale value")
			return
		}
		filter.OnSale = &onSale
	}
	if v := c.Query("price_min"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondBadRequest(c, "Invalid price_min value")
			return
		}
		filter.PriceMin = &min
	}
	if v := c.Query("price_max"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondBadRequest(c, "Invalid price_max value")
			return
		}
		filter.PriceMax = &max
	}

	filter.Search = c.Query("search")
	filter.SortBy = c.Query("sort")
	filter.SortDesc = c.Query("order") == "desc"
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	games, err := h.catalogUseCase.ListGames(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", newGameInfoList(games))
}

// GetGame returns a single game with category, discount, and screenshots
// @Summary Get game
// @Tags catalog
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /games/{id} [get]
func (h *CatalogHandler) GetGame(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid game ID")
		return
	}

	game, err := h.catalogUseCase.GetGame(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", newGameInfo(game))
}

// ListCategories returns all categories
// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {object} Response
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogUseCase.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", categories)
}

// GameReviews returns visible reviews for a game
// @Summary List game reviews
// @Tags catalog
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} Response
// @Router /games/{id}/reviews [get]
func (h *CatalogHandler) GameReviews(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid game ID")
		return
	}

	reviews, err := h.storeUseCase.GameReviews(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", reviews)
}

// GameReviewStats returns the recommendation totals for a game
// @Summary Get game review stats
// @Tags catalog
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} Response
// @Router /games/{id}/reviews/stats [get]
func (h *CatalogHandler) GameReviewStats(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid game ID")
		return
	}

	stats, err := h.storeUseCase.GameReviewStats(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", stats)
}
