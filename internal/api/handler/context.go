package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// authUser is the identity injected into context by the Auth middleware.
type authUser struct {
	ID    string
	Name  string
	Role  string
	Token string
}

// ctxUser extracts the identity injected by the Auth middleware. An empty
// user id means the middleware did not run on this route; reject with 401
// before touching any service.
func ctxUser(c echo.Context) (authUser, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return authUser{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	name, _ := c.Get("user_name").(string)
	role, _ := c.Get("role").(string)
	token, _ := c.Get("token").(string)
	return authUser{ID: id, Name: name, Role: role, Token: token}, nil
}
