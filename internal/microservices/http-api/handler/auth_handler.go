package handler

import (
	"errors"
	"net/http"
	"time"

	"dormhub/internal/microservices/http-api/dto"
	"dormhub/internal/microservices/http-api/middleware"
	"dormhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// CookieSettings controls the session cookie set on login
type CookieSettings struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	authService service.AuthService
	cookie      CookieSettings
}

func NewAuthHandler(authService service.AuthService, cookie CookieSettings) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.Password, req.Email)
	if errors.Is(err, service.ErrNameInUse) || errors.Is(err, service.ErrEmailInUse) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToUserResponse(user))
}

// Login sets the session cookie and also returns the token for bearer use
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	accessToken, expiresAt, _, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	maxAge := int(time.Until(expiresAt).Seconds())
	h.setCookie(c, accessToken, maxAge)
	c.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(maxAge),
	})
}

// Logout clears the cookie and revokes the current token
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		respondError(c, err)
		return
	}
	h.setCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

// Me returns the authenticated user
// GET /users/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToUserResponse(user))
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}
