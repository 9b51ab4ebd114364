package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wtwr-app/wtwr-backend/internal/application"
	"github.com/wtwr-app/wtwr-backend/internal/errs"
	"github.com/wtwr-app/wtwr-backend/internal/interface/middleware"
	"github.com/wtwr-app/wtwr-backend/pkg/validation"
)

type ItemHandler struct {
	Svc *application.ItemService
}

func NewItemHandler(svc *application.ItemService) *ItemHandler {
	return &ItemHandler{Svc: svc}
}

type createItemRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=30"`
	Weather  string `json:"weather" binding:"required,weather"`
	ImageURL string `json:"imageUrl" binding:"required,url"`
}

// List returns all items. Public, no authentication required.
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create stores a new item owned by the authenticated user.
func (h *ItemHandler) Create(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errs.NewValidation(validation.ToDetails(err)))
		return
	}
	it, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), application.CreateItemInput{
		Name:     req.Name,
		Weather:  req.Weather,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, it)
}

// Delete removes an item; only its owner may do so.
func (h *ItemHandler) Delete(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("itemId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item successfully deleted"})
}

// Like adds the authenticated user to the item's likes set.
func (h *ItemHandler) Like(c *gin.Context) {
	it, err := h.Svc.Like(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("itemId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// Unlike removes the authenticated user from the item's likes set.
func (h *ItemHandler) Unlike(c *gin.Context) {
	it, err := h.Svc.Unlike(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("itemId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, it)
}
