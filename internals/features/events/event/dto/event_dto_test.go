package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateEventRequestToModel(t *testing.T) {
	catID := uuid.New()
	req := CreateEventRequest{
		CategoryID: catID,
		Name:       "Salon du numérique",
		StartDate:  time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 6, 12, 18, 0, 0, 0, time.UTC),
		IsPublic:   true,
	}

	event := req.ToModel()
	assert.Equal(t, catID, event.CategoryID)
	assert.Equal(t, "Salon du numérique", event.Name)
	assert.True(t, event.IsPublic)
	// new rows always start active
	assert.True(t, event.IsActive)
}

func TestUpdateEventRequestUpdates(t *testing.T) {
	assert.Empty(t, UpdateEventRequest{}.Updates())

	name := "Forum emploi"
	isPublic := false
	req := UpdateEventRequest{Name: &name, IsPublic: &isPublic}

	u := req.Updates()
	assert.Equal(t, map[string]interface{}{
		"name":      "Forum emploi",
		"is_public": false,
	}, u)
	// untouched fields stay out of the update map
	assert.NotContains(t, u, "category_id")
	assert.NotContains(t, u, "start_date")
}
