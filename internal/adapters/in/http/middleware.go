package http

import (
	"errors"
	"net/http"
	"strings"

	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Headers installed by the upstream authentication collaborator. The workflow
// trusts them as already verified; it only parses them into an actor.
const (
	// HeaderUserID carries the authenticated user's identity as a UUID.
	HeaderUserID = "X-User-Id"

	// HeaderUserRole carries the authenticated user's role.
	HeaderUserRole = "X-User-Role"
)

// actorKey is the echo context key the actor middleware stores the actor under.
const actorKey = "brickmarket.actor"

// ActorMiddleware resolves the acting party from the authentication headers
// and makes it available to every handler. Requests without a parseable
// identity and role are rejected before reaching any handler.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := actorFromHeaders(c.Request())
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: err.Error(),
				})
			}

			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

// actorFromHeaders parses the authentication headers into a domain actor.
func actorFromHeaders(r *http.Request) (order.Actor, error) {
	rawID := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if rawID == "" {
		return order.Actor{}, errors.New("X-User-Id header is required")
	}

	rawRole := strings.TrimSpace(r.Header.Get(HeaderUserRole))
	if rawRole == "" {
		return order.Actor{}, errors.New("X-User-Role header is required")
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return order.Actor{}, err
	}

	role, err := order.RoleFromString(rawRole)
	if err != nil {
		return order.Actor{}, err
	}

	return order.NewActor(id, role)
}

// actorFromContext retrieves the actor stored by ActorMiddleware.
func actorFromContext(c echo.Context) (order.Actor, bool) {
	actor, ok := c.Get(actorKey).(order.Actor)
	return actor, ok
}
