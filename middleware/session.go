package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trial-shop/models"
	"trial-shop/utils"
)

const (
	SessionCookie = "trial_session"
	sessionKey    = "session"
	StartPath     = "/start"
)

type SessionLookup interface {
	Session(ctx context.Context, id string) (*models.Session, error)
}

// SessionMiddleware resolves the session cookie to a stored session. Requests
// without a usable session are sent to StartPath.
func SessionMiddleware(secret string, lookup SessionLookup, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			redirectToStart(c)
			return
		}

		claims, err := utils.ValidateSessionToken(secret, token)
		if err != nil {
			logger.Debug("rejected session cookie", zap.Error(err))
			redirectToStart(c)
			return
		}

		sess, err := lookup.Session(c.Request.Context(), claims.SessionID)
		if err != nil {
			if !errors.Is(err, models.ErrSessionNotFound) {
				logger.Warn("session lookup failed", zap.String("session_id", claims.SessionID), zap.Error(err))
			}
			redirectToStart(c)
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session stored by SessionMiddleware.
func CurrentSession(c *gin.Context) (*models.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*models.Session)
	return sess, ok && sess != nil
}

func redirectToStart(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, StartPath)
	c.Abort()
}
