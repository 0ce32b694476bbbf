package controller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	eventmodel "suas_backend/internals/features/events/event/model"
	helper "suas_backend/internals/helpers"
)

func day(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestCheckWindowInsideEvent(t *testing.T) {
	event := &eventmodel.Event{
		StartDate: day(2026, time.June, 10, 9),
		EndDate:   day(2026, time.June, 12, 18),
	}

	assert.NoError(t, checkWindow(event, day(2026, time.June, 10, 14), day(2026, time.June, 10, 16)))
	// event bounds widen to whole days: before 09:00 and after 18:00 still pass
	assert.NoError(t, checkWindow(event, day(2026, time.June, 10, 7), day(2026, time.June, 12, 22)))
}

func TestCheckWindowOutsideEvent(t *testing.T) {
	event := &eventmodel.Event{
		StartDate: day(2026, time.June, 10, 9),
		EndDate:   day(2026, time.June, 12, 18),
	}

	assert.Error(t, checkWindow(event, day(2026, time.June, 9, 14), day(2026, time.June, 10, 16)))
	assert.Error(t, checkWindow(event, day(2026, time.June, 12, 14), day(2026, time.June, 13, 10)))
}

func TestCheckWindowReversedDates(t *testing.T) {
	event := &eventmodel.Event{
		StartDate: day(2026, time.June, 10, 9),
		EndDate:   day(2026, time.June, 12, 18),
	}
	assert.Error(t, checkWindow(event, day(2026, time.June, 11, 16), day(2026, time.June, 11, 14)))
}

func newWorkshopApp(t *testing.T) (*fiber.App, *WorkshopController, sqlmock.Sqlmock) {
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
	return app, NewWorkshopController(db), mock
}

func TestCreateWorkshopReusedPhotoAnswersConflict(t *testing.T) {
	app, ctrl, mock := newWorkshopApp(t)
	app.Post("/create", ctrl.Create)

	eventID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "start_date", "end_date", "is_active"}).
			AddRow(eventID.String(), "Forum Tech", day(2026, time.June, 10, 9), day(2026, time.June, 12, 18), true))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "workshops"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	body := `{"eventId":"` + eventID.String() + `","name":"Atelier Go",` +
		`"photo":"/uploads/atelier.webp",` +
		`"startDate":"2026-06-10T14:00:00Z","endDate":"2026-06-10T16:00:00Z"}`
	req := httptest.NewRequest("POST", "/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var env helper.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "Veuillez changer l'image de l'atelier", env.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}
