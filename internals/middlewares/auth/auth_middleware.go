package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"suas_backend/internals/constants"
	authmodel "suas_backend/internals/features/users/auth/model"
	helper "suas_backend/internals/helpers"
)

// AuthMiddleware guards the protected surface: it rejects blacklisted or
// invalid tokens and stores the authenticated user id in Locals("user_id").
func AuthMiddleware(db *gorm.DB, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := helper.ExtractBearerToken(c)
		if err != nil {
			return helper.Error(c, err.Error(), constants.StatusUnauthorized)
		}

		// Revoked tokens stay in the blacklist until they expire.
		var revoked authmodel.TokenBlacklist
		if err := db.Where("token = ?", tokenString).First(&revoked).Error; err == nil {
			return helper.Error(c, "Session expirée, veuillez vous reconnecter", constants.StatusUnauthorized)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] vérification blacklist: %v", err)
			return helper.Error(c, "", constants.StatusInternalServerError)
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("méthode de signature inattendue")
			}
			return []byte(secret), nil
		}); err != nil {
			return helper.Error(c, "Jeton invalide ou expiré", constants.StatusUnauthorized)
		}

		userID, ok := claims["userId"].(string)
		if !ok || userID == "" {
			return helper.Error(c, "Jeton invalide ou expiré", constants.StatusUnauthorized)
		}
		c.Locals("user_id", userID)
		c.Locals("token", tokenString)

		return c.Next()
	}
}
