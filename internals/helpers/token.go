// file: internals/helpers/token.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"truyenhub_backend/internals/constants"
)

// GetRawAccessToken mengembalikan access token dari:
// 1) Authorization header "Bearer <token>"
// 2) cookie "access_token"
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	return ""
}

// GetUserID mengambil user id dari Locals (diset middleware auth).
// ok = false berarti request anonim.
func GetUserID(c *fiber.Ctx) (uint, bool) {
	v := c.Locals("user_id")
	switch id := v.(type) {
	case uint:
		return id, true
	case float64:
		return uint(id), true
	case string:
		n, err := strconv.ParseUint(id, 10, 64)
		if err != nil {
			return 0, false
		}
		return uint(n), true
	}
	return 0, false
}

func GetUserRole(c *fiber.Ctx) string {
	if role, ok := c.Locals("user_role").(string); ok {
		return role
	}
	return ""
}

func IsAdmin(c *fiber.Ctx) bool {
	return GetUserRole(c) == constants.RoleAdmin
}
