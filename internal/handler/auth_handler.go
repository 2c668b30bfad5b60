package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"Wayn-App/internal/domain/model"
	"Wayn-App/internal/domain/repository"
	"Wayn-App/internal/usecase"
)

// AuthHandler serves the anonymous-session and Google login endpoints.
type AuthHandler struct {
	authUseCase   usecase.AuthUseCase
	sessions      repository.SessionsRepository
	secureCookies bool
}

// NewAuthHandler creates a new AuthHandler. secureCookies should be
// true whenever the service is reached over HTTPS.
func NewAuthHandler(authUseCase usecase.AuthUseCase, sessions repository.SessionsRepository, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authUseCase:   authUseCase,
		sessions:      sessions,
		secureCookies: secureCookies,
	}
}

// PostSession POST /api/auth/session - find-or-create an anonymous identity.
func (h *AuthHandler) PostSession(c *gin.Context) {
	var req model.AnonymousSessionRequest
	// An empty or malformed body is a first visit, not an error.
	_ = c.ShouldBindJSON(&req)

	resp, err := h.authUseCase.AnonymousSession(c.Request.Context(), req.AnonymousID)
	if err != nil {
		log.Printf("❌ anonymous session handling failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "خطأ في معالجة جلسة المستخدم.",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetGoogle GET /api/auth/google - start the OAuth redirect, stashing
// the anonymous id in the session for the merge on callback.
func (h *AuthHandler) GetGoogle(c *gin.Context) {
	session, err := EnsureSession(c, h.sessions, h.secureCookies)
	if err != nil {
		log.Printf("❌ failed to open session for login: %v", err)
		c.Redirect(http.StatusFound, "/")
		return
	}

	authURL, err := h.authUseCase.BeginGoogleLogin(c.Request.Context(), session, c.Query("anonymousId"))
	if err != nil {
		log.Printf("❌ failed to begin google login: %v", err)
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// GetGoogleCallback GET /api/auth/google/callback - OAuth return leg.
// Any failure falls back to the root page unauthenticated.
func (h *AuthHandler) GetGoogleCallback(c *gin.Context) {
	session := CurrentSession(c)
	if session == nil {
		log.Printf("⚠️ google callback without a session")
		c.Redirect(http.StatusFound, "/")
		return
	}

	_, err := h.authUseCase.CompleteGoogleLogin(c.Request.Context(), session, c.Query("state"), c.Query("code"))
	if err != nil {
		log.Printf("❌ google login failed: %v", err)
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// GetMe GET /api/auth/me - report the logged-in user, 401 otherwise.
func (h *AuthHandler) GetMe(c *gin.Context) {
	user, err := h.authUseCase.CurrentUser(c.Request.Context(), CurrentSession(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "User not authenticated",
		})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetLogout GET /api/auth/logout - drop the session and go home.
func (h *AuthHandler) GetLogout(c *gin.Context) {
	if err := h.authUseCase.Logout(c.Request.Context(), CurrentSession(c)); err != nil {
		log.Printf("⚠️ logout failed: %v", err)
	}
	c.SetCookie(SessionCookieName, "", -1, "/", "", h.secureCookies, true)
	c.Redirect(http.StatusFound, "/")
}
