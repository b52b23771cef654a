package api

import (
	"errors"
	"net/http"

	"curtaincall/internal/domain/member"
	reqdto "curtaincall/internal/handler/dto/request"
	resdto "curtaincall/internal/handler/dto/response"
	"curtaincall/internal/handler/middleware"
	"curtaincall/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase   usecase.AuthUseCase
	memberUseCase usecase.MemberUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, memberUseCase usecase.MemberUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase:   authUseCase,
		memberUseCase: memberUseCase,
	}
}

// @Summary Member login
// @Description Login with id and password, captcha-gated
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.ID, req.Pwd, req.RecaptchaToken)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCaptchaRequired), errors.Is(err, usecase.ErrCaptchaRejected):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Captcha verification failed",
			})
		case errors.Is(err, usecase.ErrInvalidCredentials), errors.Is(err, usecase.ErrMemberNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid id or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

// @Summary Check id availability
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.IDCheckRequest true "ID check request"
// @Success 200 {object} resdto.IDCheckResponse
// @Router /auth/id-check [post]
func (h *AuthHandler) CheckID(c *gin.Context) {
	var req reqdto.IDCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	available, err := h.authUseCase.CheckID(c.Request.Context(), req.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.IDCheckResponse{Available: available})
}

// @Summary Register a local member
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.MemberResponse
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	m, err := h.authUseCase.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDuplicateMemberID):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Member id already taken",
			})
		case errors.Is(err, member.ErrInvalidEmail), errors.Is(err, member.ErrInvalidID), errors.Is(err, member.ErrInvalidName):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMember(m))
}

// oauthToken handles the provider-neutral code-to-token exchange.
func (h *AuthHandler) oauthToken(c *gin.Context, provider member.Provider) {
	var req reqdto.OAuthCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	accessToken, err := h.authUseCase.ExchangeToken(c.Request.Context(), provider, req.Code, req.State)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Token exchange failed",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.OAuthTokenResponse{AccessToken: accessToken})
}

func (h *AuthHandler) NaverToken(c *gin.Context)  { h.oauthToken(c, member.ProviderNaver) }
func (h *AuthHandler) KakaoToken(c *gin.Context)  { h.oauthToken(c, member.ProviderKakao) }
func (h *AuthHandler) GoogleToken(c *gin.Context) { h.oauthToken(c, member.ProviderGoogle) }

func (h *AuthHandler) oauthSignIn(c *gin.Context, signIn func(string) (*usecase.AuthResult, error)) {
	var req reqdto.OAuthTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := signIn(req.Token)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Social sign-in failed",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

// @Summary Sign in with naver
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.OAuthTokenRequest true "Access token"
// @Success 200 {object} resdto.AuthResponse
// @Router /auth/naver/me [post]
func (h *AuthHandler) NaverSignIn(c *gin.Context) {
	h.oauthSignIn(c, func(token string) (*usecase.AuthResult, error) {
		return h.authUseCase.NaverSignIn(c.Request.Context(), token)
	})
}

func (h *AuthHandler) KakaoSignIn(c *gin.Context) {
	h.oauthSignIn(c, func(token string) (*usecase.AuthResult, error) {
		return h.authUseCase.KakaoSignIn(c.Request.Context(), token)
	})
}

func (h *AuthHandler) GoogleSignIn(c *gin.Context) {
	h.oauthSignIn(c, func(token string) (*usecase.AuthResult, error) {
		return h.authUseCase.GoogleSignIn(c.Request.Context(), token)
	})
}

// @Summary Get current member
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MemberResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	m, err := h.memberUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Member not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMember(m))
}
