package handler

import (
	"net/http"

	"taskboard/internal/usecase/auth"
	"taskboard/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *auth.Service
}

func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var request auth.SignupRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Name = utils.SanitizeString(request.Name)
	request.Phone = utils.SanitizePhone(request.Phone)
	if request.Address != nil {
		sanitized := utils.SanitizeString(*request.Address)
		request.Address = &sanitized
	}

	authResponse, err := h.service.Signup(c.Request.Context(), &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Signup successful", authResponse)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var request auth.LoginRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Phone = utils.SanitizePhone(request.Phone)

	authResponse, err := h.service.Login(c.Request.Context(), &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", authResponse)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var request auth.RefreshRequest

	if err := c.ShouldBindJSON(&request); err != nil || request.Token == "" {
		utils.ErrorResponse(c, http.StatusForbidden, "Invalid or expired refresh token")
		return
	}

	response, err := h.service.Refresh(c.Request.Context(), &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Token refreshed successfully", response)
}
