// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"truyenhub_backend/internals/configs"
	"truyenhub_backend/internals/constants"
	userModel "truyenhub_backend/internals/features/users/user/model"
	helper "truyenhub_backend/internals/helpers"
)

// AuthMiddleware mewajibkan JWT valid, lalu menyimpan user_id & user_role ke
// Locals. Akun nonaktif ditolak walau tokennya masih hidup.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Missing token")
		}

		claims, err := parseClaims(tokenString)
		if err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid token")
		}

		userID, role, err := extractIdentity(claims)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		if err := ensureUserActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
		}

		c.Locals("user_id", userID)
		c.Locals("user_role", role)
		return c.Next()
	}
}

// OptionalAuthMiddleware mengisi Locals bila token valid dan diam saja bila
// tidak ada / invalid — dipakai endpoint baca chapter (access gate), yang
// tetap terbuka untuk anonim.
func OptionalAuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return c.Next()
		}

		claims, err := parseClaims(tokenString)
		if err != nil {
			return c.Next()
		}
		userID, role, err := extractIdentity(claims)
		if err != nil {
			return c.Next()
		}
		if err := ensureUserActive(db, userID); err != nil {
			return c.Next()
		}

		c.Locals("user_id", userID)
		c.Locals("user_role", role)
		return c.Next()
	}
}

// IsAdmin harus dipasang SETELAH AuthMiddleware.
func IsAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helper.GetUserRole(c) != constants.RoleAdmin {
			return helper.JsonError(c, fiber.StatusForbidden, constants.ErrOnlyAdminsCanAccess)
		}
		return c.Next()
	}
}

func parseClaims(tokenString string) (jwt.MapClaims, error) {
	secretKey := configs.JWTSecret
	if secretKey == "" {
		return nil, errors.New("JWT secret belum diset")
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func extractIdentity(claims jwt.MapClaims) (uint, string, error) {
	idRaw, ok := claims["user_id"].(float64)
	if !ok || idRaw <= 0 {
		return 0, "", errors.New("user_id claim missing")
	}
	role, _ := claims["role"].(string)
	if role == "" {
		role = constants.RoleUser
	}
	return uint(idRaw), role, nil
}

func ensureUserActive(db *gorm.DB, userID uint) error {
	var u userModel.User
	if err := db.Select("id", "is_active").First(&u, userID).Error; err != nil {
		return err
	}
	if !u.IsActive {
		return errors.New("user inactive")
	}
	return nil
}
