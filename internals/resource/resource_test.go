package resource

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"suas_backend/internals/constants"
	helper "suas_backend/internals/helpers"
)

func TestStatusErrorCarriesKey(t *testing.T) {
	err := fmt.Errorf("refus: %w", &StatusError{Key: constants.StatusConflict, Message: "Plus de places disponibles"})

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, constants.StatusConflict, se.Key)
	assert.Equal(t, "Plus de places disponibles", se.Error())
}

func TestParseID(t *testing.T) {
	app := fiber.New()
	var got uuid.UUID
	var gotErr error
	app.Get("/:id", func(c *fiber.Ctx) error {
		got, gotErr = ParseID(c)
		return c.SendStatus(fiber.StatusOK)
	})

	want := uuid.New()
	_, err := app.Test(httptest.NewRequest("GET", "/"+want.String(), nil))
	require.NoError(t, err)
	require.NoError(t, gotErr)
	assert.Equal(t, want, got)

	_, err = app.Test(httptest.NewRequest("GET", "/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Error(t, gotErr)
}

type ticket struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name     string    `gorm:"column:name"`
	IsActive bool      `gorm:"column:is_active;default:true"`
}

func (ticket) TableName() string { return "tickets" }

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func newTicketApp(t *testing.T) (*fiber.App, *Resource[ticket], sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	res := &Resource[ticket]{
		DB: db,
		Opts: helper.ListOptions{
			SearchFields: []string{"name"},
			SortFields:   []string{"createdAt", "name"},
			DefaultLimit: 10,
		},
		NotFound: "Ticket introuvable",
	}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", uuid.NewString())
		return c.Next()
	})
	return app, res, mock
}

func decodeEnvelope(t *testing.T, resp *http.Response) helper.Envelope {
	t.Helper()
	var env helper.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestSoftDeleteMissingOrInactiveAnswersNotFound(t *testing.T) {
	app, res, mock := newTicketApp(t)
	app.Delete("/:id", res.SoftDelete)

	mock.ExpectExec(`UPDATE "tickets"`).WillReturnResult(sqlmock.NewResult(0, 0))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
	assert.Equal(t, "Ticket introuvable", env.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteActiveRowAnswersNoContent(t *testing.T) {
	app, res, mock := newTicketApp(t)
	app.Delete("/:id", res.SoftDelete)

	mock.ExpectExec(`UPDATE "tickets"`).WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestoreAlreadyActiveAnswersNotFound(t *testing.T) {
	app, res, mock := newTicketApp(t)
	app.Patch("/:id", func(c *fiber.Ctx) error {
		return res.Restore(c, "Ticket restauré avec succès")
	})

	// The guarded UPDATE matches no row when the ticket is already active.
	mock.ExpectExec(`UPDATE "tickets"`).WillReturnResult(sqlmock.NewResult(0, 0))

	resp, err := app.Test(httptest.NewRequest("PATCH", "/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "Ticket introuvable", env.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestoreInactiveRowSucceeds(t *testing.T) {
	app, res, mock := newTicketApp(t)
	app.Patch("/:id", func(c *fiber.Ctx) error {
		return res.Restore(c, "Ticket restauré avec succès")
	})

	mock.ExpectExec(`UPDATE "tickets"`).WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := app.Test(httptest.NewRequest("PATCH", "/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.True(t, env.Success)
	assert.Equal(t, "Ticket restauré avec succès", env.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnlimitedListOverCeilingAnswersBadRequest(t *testing.T) {
	app, res, mock := newTicketApp(t)
	app.Get("/", res.List)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "tickets"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1500))

	resp, err := app.Test(httptest.NewRequest("GET", "/?limit=-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "Trop de résultats pour une requête sans limite, veuillez paginer", env.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnlimitedListUnderCeilingListsEverything(t *testing.T) {
	app, res, mock := newTicketApp(t)
	app.Get("/", res.List)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "tickets"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "tickets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_active"}).
			AddRow(uuid.NewString(), "alpha", true).
			AddRow(uuid.NewString(), "beta", true))

	resp, err := app.Test(httptest.NewRequest("GET", "/?limit=-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
