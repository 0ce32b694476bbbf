package controller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	helper "suas_backend/internals/helpers"
)

func newEventApp(t *testing.T) (*fiber.App, *EventController, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", uuid.NewString())
		return c.Next()
	})
	return app, NewEventController(db), mock
}

func TestCreateEventReusedPhotoAnswersConflict(t *testing.T) {
	app, ctrl, mock := newEventApp(t)
	app.Post("/create", ctrl.Create)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	body := `{"categoryId":"` + uuid.NewString() + `","name":"Forum Tech",` +
		`"photo":"/uploads/forum.webp",` +
		`"startDate":"2026-09-01T09:00:00Z","endDate":"2026-09-02T18:00:00Z"}`
	req := httptest.NewRequest("POST", "/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var env helper.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.False(t, env.Success)
	assert.Equal(t, "Veuillez changer l'image de l'événement", env.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEventEndBeforeStartAnswersBadRequest(t *testing.T) {
	app, ctrl, _ := newEventApp(t)
	app.Post("/create", ctrl.Create)

	body := `{"categoryId":"` + uuid.NewString() + `","name":"Forum Tech",` +
		`"startDate":"2026-09-02T09:00:00Z","endDate":"2026-09-01T18:00:00Z"}`
	req := httptest.NewRequest("POST", "/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
