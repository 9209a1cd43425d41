package middleware

import (
	"database/sql"
	"errors"
	"net/http"

	"credential-assistant/database"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionCookieName = "credential_assistant_session"
const CookieMaxAge = 30 * 24 * 60 * 60 // 30 days

// SessionMiddleware resolves the caller's session from a cookie and stores the
// id on the gin context. A missing cookie, an unknown id, or a deactivated
// session all get a fresh DB session; cookies outlive cleanup, so a stale id
// must never reach the message store.
func SessionMiddleware(store *database.PostgresStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookieName)
		var sessionID uuid.UUID

		switch {
		case err == http.ErrNoCookie:
			sessionID, err = newSession(c, store)
			if err != nil {
				return
			}
		case err != nil:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse session cookie"})
			return
		default:
			sessionID, err = uuid.Parse(cookie)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
				return
			}

			sess, err := store.GetSessionByID(c.Request.Context(), sessionID)
			if errors.Is(err, sql.ErrNoRows) || (err == nil && !sess.IsActive) {
				sessionID, err = newSession(c, store)
				if err != nil {
					return
				}
			} else if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
				return
			}
		}

		c.Set("sessionID", sessionID)
		c.Next()
	}
}

func newSession(c *gin.Context, store *database.PostgresStore) (uuid.UUID, error) {
	sessionID, err := store.CreateSession(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return uuid.Nil, err
	}
	c.SetCookie(SessionCookieName, sessionID.String(), CookieMaxAge, "/", "", false, true)
	return sessionID, nil
}
