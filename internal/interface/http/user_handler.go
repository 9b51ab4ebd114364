package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wtwr-app/wtwr-backend/internal/application"
	"github.com/wtwr-app/wtwr-backend/internal/errs"
	"github.com/wtwr-app/wtwr-backend/internal/interface/middleware"
	"github.com/wtwr-app/wtwr-backend/pkg/validation"
)

type UserHandler struct {
	Svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=30"`
	Avatar   string `json:"avatar" binding:"omitempty,url"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type signinRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	Name   string `json:"name" binding:"required,min=2,max=30"`
	Avatar string `json:"avatar" binding:"omitempty,url"`
}

// Signup registers a new user. The response body never contains the
// password; the entity strips it on serialization.
func (h *UserHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errs.NewValidation(validation.ToDetails(err)))
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Avatar:   req.Avatar,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// Signin authenticates a user and returns a bearer token.
func (h *UserHandler) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errs.NewValidation(validation.ToDetails(err)))
		return
	}
	token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Me returns the authenticated user's profile.
func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.Svc.GetProfile(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateMe updates the authenticated user's name and avatar.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errs.NewValidation(validation.ToDetails(err)))
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), application.UpdateProfileInput{
		Name:   req.Name,
		Avatar: req.Avatar,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, u)
}
