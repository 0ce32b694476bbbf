package controller

import (
	"encoding/json"
	"net/http"
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

	"suas_backend/internals/configs"
	helper "suas_backend/internals/helpers"
	"suas_backend/internals/services/mailer"
)

func newMockedController(t *testing.T) (*ParticipantController, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return NewParticipantController(db, mailer.New(configs.Config{})), mock
}

func newParticipantApp(t *testing.T) (*fiber.App, *ParticipantController, sqlmock.Sqlmock) {
	t.Helper()
	ctrl, mock := newMockedController(t)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", uuid.NewString())
		return c.Next()
	})
	return app, ctrl, mock
}

func decodeEnvelope(t *testing.T, resp *http.Response) helper.Envelope {
	t.Helper()
	var env helper.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

// The mic and hand endpoints invert the stored flag on their own, the
// request carries no body at all.
func TestChangeMicStateTogglesWithoutBody(t *testing.T) {
	app, ctrl, mock := newParticipantApp(t)
	app.Patch("/changemicstate/:id", ctrl.ChangeMicState)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "participants"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "workshop_id", "name", "is_active", "is_active_microphone", "is_hand_raised"}).
			AddRow(id.String(), uuid.NewString(), "Jean", true, false, false))
	mock.ExpectExec(`UPDATE "participants" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := app.Test(httptest.NewRequest("PATCH", "/changemicstate/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.True(t, env.Success)
	assert.Equal(t, "État du microphone mis à jour avec succès", env.Message)

	result, ok := env.Result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, result["isActiveMicrophone"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChangeHandStateLowersRaisedHand(t *testing.T) {
	app, ctrl, mock := newParticipantApp(t)
	app.Patch("/changehandstate/:id", ctrl.ChangeHandState)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "participants"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "workshop_id", "name", "is_active", "is_active_microphone", "is_hand_raised"}).
			AddRow(id.String(), uuid.NewString(), "Jean", true, false, true))
	mock.ExpectExec(`UPDATE "participants" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := app.Test(httptest.NewRequest("PATCH", "/changehandstate/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "État de la main mis à jour avec succès", env.Message)

	result, ok := env.Result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, result["isHandRaised"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChangeMicStateInactiveParticipantAnswersNotFound(t *testing.T) {
	app, ctrl, mock := newParticipantApp(t)
	app.Patch("/changemicstate/:id", ctrl.ChangeMicState)

	mock.ExpectQuery(`SELECT \* FROM "participants"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := app.Test(httptest.NewRequest("PATCH", "/changemicstate/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "Participant non trouvé ou inactif", env.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveFullWorkshopAnswersConflict(t *testing.T) {
	app, ctrl, mock := newParticipantApp(t)
	app.Patch("/approved/:id", ctrl.Approve)

	id := uuid.New()
	workshopID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "participants"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "workshop_id", "name", "is_active"}).
			AddRow(id.String(), workshopID.String(), "Jean", true))
	mock.ExpectQuery(`SELECT \* FROM "workshops"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "number_of_places", "is_active"}).
			AddRow(workshopID.String(), "Atelier Go", 1, true))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "participants"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	resp, err := app.Test(httptest.NewRequest("PATCH", "/approved/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
	assert.Equal(t, "Plus de places disponibles", env.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDuplicateOwnerInWorkshopAnswersConflict(t *testing.T) {
	app, ctrl, mock := newParticipantApp(t)
	app.Post("/create", ctrl.Create)

	workshopID := uuid.New()
	ownerID := uuid.New()

	// Workshop exists and is active.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "workshops"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	// The owner already holds a seat in that workshop.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "participants"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	body := `{"workshopId":"` + workshopID.String() + `","name":"Jean","ownerId":"` + ownerID.String() + `"}`
	req := httptest.NewRequest("POST", "/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "Ce participant existe déjà pour cet atelier", env.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}
