package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"suas_backend/internals/constants"
)

// Envelope is the body shape of every JSON response. Result is omitted when
// the handler has nothing to return (approve, restore, logout, ...).
type Envelope struct {
	Success bool        `json:"success"`
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Result  interface{} `json:"result,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Success writes a success envelope. The variadic tail is [statusKey]
// or [statusKey, message]: the key defaults to OK and the message to the
// status text of the resolved key.
func Success(c *fiber.Ctx, data interface{}, keyAndMessage ...string) error {
	key := constants.StatusOK
	if len(keyAndMessage) > 0 && keyAndMessage[0] != "" {
		key = keyAndMessage[0]
	}
	st := constants.ResolveStatus(key)
	message := st.Message
	if len(keyAndMessage) > 1 && keyAndMessage[1] != "" {
		message = keyAndMessage[1]
	}
	return c.Status(st.StatusCode).JSON(Envelope{
		Success: true,
		Status:  st.StatusCode,
		Message: message,
		Result:  data,
	})
}

// Error writes an error envelope. An empty message falls back to the status
// text of the resolved key; statusKey defaults to INTERNAL_SERVER_ERROR.
func Error(c *fiber.Ctx, message string, statusKey string, errs ...interface{}) error {
	if statusKey == "" {
		statusKey = constants.StatusInternalServerError
	}
	st := constants.ResolveStatus(statusKey)
	if strings.TrimSpace(message) == "" {
		message = st.Message
	}
	env := Envelope{
		Success: false,
		Status:  st.StatusCode,
		Message: message,
	}
	if len(errs) > 0 && errs[0] != nil {
		env.Errors = errs[0]
	}
	return c.Status(st.StatusCode).JSON(env)
}

// NoContent writes an empty 204 response.
func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// ValidationError surfaces every violation as one comma-joined BAD_REQUEST
// message, mirroring how clients already consume validation failures.
func ValidationError(c *fiber.Ctx, err error) error {
	if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
		messages := make([]string, 0, len(ve))
		for _, fe := range ve {
			messages = append(messages, ValidationMessage(fe))
		}
		return Error(c, strings.Join(messages, ", "), constants.StatusBadRequest)
	}
	return Error(c, "Requête invalide", constants.StatusBadRequest)
}

// ValidationMessage renders one field error as a human-readable sentence.
func ValidationMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return "Le champ " + field + " est obligatoire"
	case "email":
		return "Le champ " + field + " doit être un email valide"
	case "min":
		return "Le champ " + field + " doit contenir au moins " + fe.Param() + " caractères"
	case "max":
		return "Le champ " + field + " doit contenir au plus " + fe.Param() + " caractères"
	case "oneof":
		return "Le champ " + field + " doit être l'une des valeurs: " + fe.Param()
	case "uuid":
		return "Le champ " + field + " doit être un identifiant valide"
	default:
		return "Le champ " + field + " est invalide"
	}
}
