package constants

import "github.com/gofiber/fiber/v2"

// HTTPStatus maps symbolic status keys to the {code, message} pair embedded
// in every response envelope. The HTTP status code written on the wire is
// always the same code.
type HTTPStatus struct {
	StatusCode int
	Message    string
}

const (
	StatusOK                  = "OK"
	StatusCreated             = "CREATED"
	StatusNoContent           = "NO_CONTENT"
	StatusBadRequest          = "BAD_REQUEST"
	StatusUnauthorized        = "UN_AUTHORIZED"
	StatusForbidden           = "FORBIDDEN"
	StatusNotFound            = "NOT_FOUND"
	StatusConflict            = "CONFLICT"
	StatusTooManyRequests     = "TOO_MANY_REQUESTS"
	StatusInternalServerError = "INTERNAL_SERVER_ERROR"
)

var httpStatuses = map[string]HTTPStatus{
	StatusOK:                  {fiber.StatusOK, "OK"},
	StatusCreated:             {fiber.StatusCreated, "Created"},
	StatusNoContent:           {fiber.StatusNoContent, "No Content"},
	StatusBadRequest:          {fiber.StatusBadRequest, "Bad Request"},
	StatusUnauthorized:        {fiber.StatusUnauthorized, "Unauthorized"},
	StatusForbidden:           {fiber.StatusForbidden, "Forbidden"},
	StatusNotFound:            {fiber.StatusNotFound, "Not Found"},
	StatusConflict:            {fiber.StatusConflict, "Conflict"},
	StatusTooManyRequests:     {fiber.StatusTooManyRequests, "Too Many Requests"},
	StatusInternalServerError: {fiber.StatusInternalServerError, "Internal Server Error"},
}

// ResolveStatus returns the pair for a symbolic key. Unknown keys resolve to
// INTERNAL_SERVER_ERROR so a typo in a handler can never write status 0.
func ResolveStatus(key string) HTTPStatus {
	if s, ok := httpStatuses[key]; ok {
		return s
	}
	return httpStatuses[StatusInternalServerError]
}
