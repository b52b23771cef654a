package api

import (
	"errors"
	"net/http"

	reqdto "curtaincall/internal/handler/dto/request"
	resdto "curtaincall/internal/handler/dto/response"
	"curtaincall/internal/handler/middleware"
	"curtaincall/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{adminUseCase: adminUseCase}
}

// @Summary Admin login
// @Description Issues a short-lived admin token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} resdto.AdminAuthResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id and password are required"})
		return
	}

	token, err := h.adminUseCase.Login(c.Request.Context(), req.AdminID, req.AdminPassword)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAdminNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		case errors.Is(err, usecase.ErrAdminInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Password does not match"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AdminAuthResponse{Token: token})
}

// @Summary Admin session check
// @Description Confirms the admin token is still valid
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.AdminSessionResponse
// @Router /admin/active [get]
func (h *AdminHandler) Active(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin not authenticated"})
		return
	}
	c.JSON(http.StatusOK, resdto.AdminSessionResponse{AdminID: adminID})
}
