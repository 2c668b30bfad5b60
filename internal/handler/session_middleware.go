package handler

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"Wayn-App/internal/domain/model"
	"Wayn-App/internal/domain/repository"
)

// SessionCookieName is the browser cookie carrying the session id.
const SessionCookieName = "wayn_session"

const sessionContextKey = "session"

// SessionMiddleware loads the server-side session document referenced
// by the request cookie, if any, and stores it on the request context.
// It never creates sessions; handlers that need one call EnsureSession.
func SessionMiddleware(sessions repository.SessionsRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookieName)
		if err == nil && id != "" {
			session, err := sessions.Get(c.Request.Context(), id)
			if err != nil {
				log.Printf("⚠️ failed to load session %s: %v", id, err)
			} else if session != nil {
				c.Set(sessionContextKey, session)
			}
		}
		c.Next()
	}
}

// CurrentSession returns the session loaded by the middleware, or nil.
func CurrentSession(c *gin.Context) *model.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if session, ok := v.(*model.Session); ok {
			return session
		}
	}
	return nil
}

// EnsureSession returns the request's session, creating a fresh
// document and setting the cookie when the browser has none yet.
func EnsureSession(c *gin.Context, sessions repository.SessionsRepository, secure bool) (*model.Session, error) {
	if session := CurrentSession(c); session != nil {
		return session, nil
	}

	now := time.Now()
	session := &model.Session{
		ID:        uuid.New().String(),
		ExpiresAt: now.Add(model.SessionTTL),
		CreatedAt: now,
	}
	if err := sessions.Put(c.Request.Context(), session); err != nil {
		return nil, err
	}

	c.SetCookie(SessionCookieName, session.ID, int(model.SessionTTL.Seconds()), "/", "", secure, true)
	c.Set(sessionContextKey, session)
	return session, nil
}
