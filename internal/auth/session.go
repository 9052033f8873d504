package auth

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionUserKey = "USER_ID"

// SessionMaxAge is the absolute lifetime of a login session.
const SessionMaxAge = 24 * 60 * 60 // 24 horas

// SetSessionUser binds the user id to the request's session. Only the
// id is persisted; the full user record is re-fetched per request.
func SetSessionUser(c *gin.Context, userID uint, secure bool) error {
	s := sessions.Default(c)
	s.Set(sessionUserKey, userID)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   SessionMaxAge,
		HttpOnly: true,
		Secure:   secure,
	})
	return s.Save()
}

// SessionUserID returns the user id bound to the session, or 0 if the
// request is anonymous.
func SessionUserID(c *gin.Context) uint {
	s := sessions.Default(c)
	if id, ok := s.Get(sessionUserKey).(uint); ok {
		return id
	}
	return 0
}

// ClearSession invalidates the session immediately and expires the
// cookie.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
