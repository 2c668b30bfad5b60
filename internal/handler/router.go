package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Wayn-App/internal/domain/repository"
)

// SetupRoutes wires every endpoint onto the engine.
func SetupRoutes(r *gin.Engine, sessions repository.SessionsRepository, authHandler *AuthHandler, suggestionsHandler *SuggestionsHandler) {
	r.Use(SessionMiddleware(sessions))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "Wayn-App"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/session", authHandler.PostSession)
			auth.GET("/google", authHandler.GetGoogle)
			auth.GET("/google/callback", authHandler.GetGoogleCallback)
			auth.GET("/me", authHandler.GetMe)
			auth.GET("/logout", authHandler.GetLogout)
		}

		api.GET("/suggestions", suggestionsHandler.GetSuggestions)
	}
}
