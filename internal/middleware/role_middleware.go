package middleware

import (
	"github.com/fadilmartias/talentflow/internal/session"
	"github.com/fadilmartias/talentflow/internal/util"
	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
)

// RequireRole lets the request through only when the session is signed in as role.
func RequireRole(store *fibersession.Store, role session.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "could not read session",
			}, err)
		}
		if session.FromFiber(sess).Role != role {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: "sign in as " + string(role) + " to continue",
			})
		}
		return c.Next()
	}
}
