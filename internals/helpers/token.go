package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ExtractBearerToken pulls the raw JWT from the Authorization header.
func ExtractBearerToken(c *fiber.Ctx) (string, error) {
	auth := c.Get("Authorization")
	if auth == "" {
		return "", errors.New("authorization header manquant")
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("format d'autorisation invalide")
	}
	return strings.TrimSpace(parts[1]), nil
}

// GetUserIDFromContext reads the authenticated user id stored by the auth
// middleware in Locals.
func GetUserIDFromContext(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("utilisateur non authentifié")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("identifiant utilisateur invalide")
	}
	return id, nil
}
