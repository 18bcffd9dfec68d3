package middleware

import (
	"fmt"
	"net/http"

	"reviewer/model"
	"reviewer/session"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const SESSION_COOKIE_NAME = "reviewer_session"

// SessionMiddleware binds every request to a session: the cookie carries a
// securecookie-sealed RID, the registry owns the state. A missing or
// invalid cookie starts a fresh session.
func (r *Middleware) SessionMiddleware(registry *session.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := uuid.Nil
			if cookie, err := c.Cookie(SESSION_COOKIE_NAME); err == nil {
				var decoded string
				if err := r.secureCookie.Decode(SESSION_COOKIE_NAME, cookie.Value, &decoded); err == nil {
					if parsed, err := uuid.Parse(decoded); err == nil {
						rid = parsed
					}
				}
			}

			if rid == uuid.Nil {
				rid = uuid.New()
				encoded, err := r.secureCookie.Encode(SESSION_COOKIE_NAME, rid.String())
				if err != nil {
					return fmt.Errorf("encoding session cookie: %w", err)
				}
				c.SetCookie(&http.Cookie{
					Name:     SESSION_COOKIE_NAME,
					Value:    encoded,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			registry.GetOrCreate(rid)

			rc := model.GetRequestContext(c)
			rc.SessionRID = rid
			model.SetRequestContext(c, rc)

			return next(c)
		}
	}
}
