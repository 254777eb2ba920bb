package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pressplay/gamestore/internal/domain"
	"github.com/pressplay/gamestore/internal/http/middleware"
)

// StoreHandler handles cart, wishlist, purchase, library, and review requests
type StoreHandler struct {
	storeUseCase domain.StoreUseCase
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeUseCase domain.StoreUseCase) *StoreHandler {
	return &StoreHandler{storeUseCase: storeUseCase}
}

// CartResponse bundles cart rows with their effective-price total
type CartResponse struct {
	Items []*domain.CartItem `json:"items"`
	Total float64            `json:"total"`
}

// PostReviewRequest represents a new review
type PostReviewRequest struct {
	Text        string `json:"text" binding:"required"`
	Recommended bool   `json:"recommended"`
}

func gameIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid game ID")
		return 0, false
	}
	return id, true
}

// AddToCart puts a game into the authenticated user's cart
// @Summary Add game to cart
// @Tags store
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Success 200 {object} Response
// @Failure 409 {object} Response
// @Router /cart/{id} [post]
func (h *StoreHandler) AddToCart(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}
	if err := h.storeUseCase.AddToCart(middleware.UserID(c), gameID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Game added to cart", nil)
}

// RemoveFromCart drops a game from the authenticated user's cart
// @Summary Remove game from cart
// @Tags store
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Success 200 {object} Response
// @Router /cart/{id} [delete]
func (h *StoreHandler) RemoveFromCart(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}
	if err := h.storeUseCase.RemoveFromCart(middleware.UserID(c), gameID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Game removed from cart", nil)
}

// GetCart lists the authenticated user's cart with its total
// @Summary Get cart
// @Tags store
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /cart [get]
func (h *StoreHandler) GetCart(c *gin.Context) {
	items, total, err := h.storeUseCase.GetCart(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", CartResponse{Items: items, Total: total})
}

// CartCount returns the number of items in the authenticated user's cart
// @Summary Get cart item count
// @Tags store
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /cart/count [get]
func (h *StoreHandler) CartCount(c *gin.Context) {
	count, err := h.storeUseCase.CartCount(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", gin.H{"count": count})
}

// Checkout purchases every game in the authenticated user's cart
// @Summary Checkout cart
// @Description Purchases cart items one by one and stops at the first failure
// @Tags store
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 402 {object} Response
// @Router /cart/checkout [post]
func (h *StoreHandler) Checkout(c *gin.Context) {
	entries, err := h.storeUseCase.PurchaseCart(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Checkout complete", entries)
}

// Purchase buys a single game for the authenticated user
// @Summary Purchase game
// @Tags store
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Success 200 {object} Response
// @Failure 402 {object} Response
// @Failure 409 {object} Response
// @Router /games/{id}/purchase [post]
func (h *StoreHandler) Purchase(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}
	entry, err := h.storeUseCase.Purchase(middleware.UserID(c), gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Purchase complete", entry)
}

// GetLibrary lists the games the authenticated user owns
// @Summary Get library
// @Tags store
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /library [get]
func (h *StoreHandler) GetLibrary(c *gin.Context) {
	entries, err := h.storeUseCase.GetLibrary(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", entries)
}

// AddToWishlist puts a game onto the authenticated user's wishlist
// @Summary Add game to wishlist
// @Tags store
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Success 201 {object} Response
// @Failure 409 {object} Response
// @Router /wishlist/{id} [post]
func (h *StoreHandler) AddToWishlist(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}
	item, err := h.storeUseCase.AddToWishlist(middleware.UserID(c), gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Game added to wishlist", item)
}

// RemoveFromWishlist drops a game from the authenticated user's wishlist
// @Summary Remove game from wishlist
// @Tags store
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Success 200 {object} Response
// @Router /wishlist/{id} [delete]
func (h *StoreHandler) RemoveFromWishlist(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}
	if err := h.storeUseCase.RemoveFromWishlist(middleware.UserID(c), gameID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Game removed from wishlist", nil)
}

// GetWishlist lists the authenticated user's wishlist in rank order
// @Summary Get wishlist
// @Tags store
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /wishlist [get]
func (h *StoreHandler) GetWishlist(c *gin.Context) {
	items, err := h.storeUseCase.GetWishlist(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", items)
}

// PostReview creates a review for an owned game
// @Summary Post review
// @Tags store
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Game ID"
// @Param request body PostReviewRequest true "Review"
// @Success 201 {object} Response
// @Failure 403 {object} Response
// @Failure 409 {object} Response
// @Router /games/{id}/reviews [post]
func (h *StoreHandler) PostReview(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	var req PostReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	review, err := h.storeUseCase.PostReview(middleware.UserID(c), gameID, req.Text, req.Recommended)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Review posted", review)
}

// DeleteReview removes a review owned by the caller (admins may remove any)
// @Summary Delete review
// @Tags store
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 200 {object} Response
// @Failure 403 {object} Response
// @Router /reviews/{id} [delete]
func (h *StoreHandler) DeleteReview(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid review ID")
		return
	}

	if err := h.storeUseCase.DeleteReview(middleware.UserID(c), reviewID, middleware.IsAdmin(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Review deleted", nil)
}
