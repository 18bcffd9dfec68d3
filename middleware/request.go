package middleware

import (
	"context"

	"reviewer/model"

	"github.com/gorilla/csrf"
	"github.com/labstack/echo/v4"
)

func (r *Middleware) RequestContextMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rc := model.GetRequestContext(c)

		rc.Url = c.Request().URL.Path
		rc.HxRequest = c.Request().Header.Get("hx-request") == "true"

		model.SetRequestContext(c, rc)

		// Expose the csrf token under the key the view components read.
		if token := csrf.Token(c.Request()); token != "" {
			ctx := context.WithValue(c.Request().Context(), "gorilla.csrf.Token", token)
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}
