package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"Wayn-App/internal/domain/model"
	"Wayn-App/internal/domain/service"
	"Wayn-App/internal/usecase"
)

// SuggestionsHandler serves GET /api/suggestions.
type SuggestionsHandler struct {
	suggestionUseCase usecase.SuggestionUseCase
}

// NewSuggestionsHandler creates a new SuggestionsHandler.
func NewSuggestionsHandler(suggestionUseCase usecase.SuggestionUseCase) *SuggestionsHandler {
	return &SuggestionsHandler{
		suggestionUseCase: suggestionUseCase,
	}
}

// GetSuggestions GET /api/suggestions?userType=&interests=&exclude=&anonymousId=&spendPoints=
func (h *SuggestionsHandler) GetSuggestions(c *gin.Context) {
	identity := resolveIdentity(c)
	query := parseQuery(c)

	response, err := h.suggestionUseCase.GetSuggestions(c.Request.Context(), identity, query)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// resolveIdentity maps the request onto the explicit identity triple:
// session user when logged in, anonymous id from the query otherwise,
// missing when neither is present.
func resolveIdentity(c *gin.Context) model.Identity {
	if session := CurrentSession(c); session != nil && session.UserID != "" {
		return model.Identity{Kind: model.IdentityAuthenticated, UserID: session.UserID}
	}
	if anonymousID := c.Query("anonymousId"); anonymousID != "" {
		return model.Identity{Kind: model.IdentityAnonymous, UserID: anonymousID}
	}
	return model.MissingIdentity
}

func parseQuery(c *gin.Context) *model.SuggestionQuery {
	query := &model.SuggestionQuery{
		UserType:    c.Query("userType"),
		SpendPoints: c.Query("spendPoints") == "true",
	}

	if interests := c.Query("interests"); interests != "" {
		query.Interests = strings.Split(interests, ",")
	}

	// Malformed exclusion ids are dropped rather than failing the
	// request; they only widen the candidate pool.
	if exclude := c.Query("exclude"); exclude != "" {
		for _, raw := range strings.Split(exclude, ",") {
			if id, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
				query.Exclude = append(query.Exclude, id)
			}
		}
	}

	return query
}

// writeError maps the use case's typed denials onto the HTTP error
// taxonomy. Anything unexpected is logged and collapsed to a generic
// 500 with no internal detail.
func (h *SuggestionsHandler) writeError(c *gin.Context, err error) {
	var quotaErr *service.QuotaExhaustedError

	switch {
	case errors.Is(err, usecase.ErrIdentityNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.As(err, &quotaErr):
		c.JSON(http.StatusTooManyRequests, gin.H{
			"message":        quotaErr.Error(),
			"canSpendPoints": quotaErr.CanSpendPoints,
		})
	case errors.Is(err, service.ErrInsufficientPoints):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrNotEnoughCandidates):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		log.Printf("❌ error fetching suggestions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "حدث خطأ أثناء جلب الاقتراحات.",
		})
	}
}
