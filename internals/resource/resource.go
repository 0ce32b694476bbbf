// Package resource factors the lifecycle every entity shares: windowed
// listing, fetch by id, soft delete, restore and approval. Controllers
// declare their searchable/sortable/filterable fields once and delegate
// the repetitive handlers here.
package resource

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"suas_backend/internals/constants"
	helper "suas_backend/internals/helpers"
)

// Resource binds one GORM model to its list options and French labels.
type Resource[T any] struct {
	DB       *gorm.DB
	Opts     helper.ListOptions
	Preloads []string

	// NotFound is the message returned when an id misses or the row is in
	// the wrong lifecycle state for the operation.
	NotFound string

	// Serialize maps loaded rows to the response payload. Nil returns the
	// rows as-is.
	Serialize func([]T) []interface{}
}

/* ===============================
   Listing
=================================*/

// List handles GET /: filters, sorts and windows per the query string and
// wraps the rows in the uniform data/pagination/filters payload. Unless the
// client filtered isActive explicitly, only active rows are listed.
func (r *Resource[T]) List(c *fiber.Ctx) error {
	p := helper.ParseListQuery(c, r.Opts)
	if !p.HasFilter("isActive") {
		p.AddWhere("is_active = ?", true)
	}
	return r.list(c, p)
}

// ListInactive handles GET /inactifs, the recycle-bin view.
func (r *Resource[T]) ListInactive(c *fiber.Ctx) error {
	p := helper.ParseListQuery(c, r.Opts)
	p.AddWhere("is_active = ?", false)
	return r.list(c, p)
}

// ListWhere is List with an extra server-imposed predicate, for the
// by-relation routes (events of an owner, messages of a workshop).
func (r *Resource[T]) ListWhere(c *fiber.Ctx, cond string, args ...interface{}) error {
	p := helper.ParseListQuery(c, r.Opts)
	if !p.HasFilter("isActive") {
		p.AddWhere("is_active = ?", true)
	}
	p.AddWhere(cond, args...)
	return r.list(c, p)
}

func (r *Resource[T]) list(c *fiber.Ctx, p helper.ListParams) error {
	var total int64
	if err := r.DB.Model(new(T)).Scopes(p.Filter()).Count(&total).Error; err != nil {
		log.Printf("[ERROR] comptage: %v", err)
		return helper.Error(c, "Erreur lors de la récupération des données", constants.StatusInternalServerError)
	}
	if p.Limit == -1 && total > helper.MaxUnlimitedRows {
		return helper.Error(c, "Trop de résultats pour une requête sans limite, veuillez paginer", constants.StatusBadRequest)
	}

	q := r.DB.Scopes(p.Scope(), p.Window())
	for _, pre := range r.Preloads {
		q = q.Preload(pre)
	}

	var rows []T
	if err := q.Find(&rows).Error; err != nil {
		log.Printf("[ERROR] liste: %v", err)
		return helper.Error(c, "Erreur lors de la récupération des données", constants.StatusInternalServerError)
	}

	var data interface{} = rows
	if r.Serialize != nil {
		data = r.Serialize(rows)
	}
	return helper.Success(c, p.ListResult(data, total))
}

/* ===============================
   Single row
=================================*/

// GetByID handles GET /:id. Lifecycle state is not checked: inactive rows
// stay reachable by id.
func (r *Resource[T]) GetByID(c *fiber.Ctx) error {
	id, err := ParseID(c)
	if err != nil {
		return helper.Error(c, "Identifiant invalide", constants.StatusBadRequest)
	}

	row, err := r.Load(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, r.NotFound, constants.StatusNotFound)
		}
		log.Printf("[ERROR] lecture: %v", err)
		return helper.Error(c, "Erreur lors de la récupération des données", constants.StatusInternalServerError)
	}

	if r.Serialize != nil {
		return helper.Success(c, r.Serialize([]T{*row})[0])
	}
	return helper.Success(c, row)
}

// Load fetches one row by primary key with the configured preloads.
func (r *Resource[T]) Load(id uuid.UUID) (*T, error) {
	q := r.DB
	for _, pre := range r.Preloads {
		q = q.Preload(pre)
	}
	var row T
	if err := q.First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

/* ===============================
   Lifecycle
=================================*/

// SoftDelete handles DELETE /:id. Only an active row can be deactivated;
// a missing or already inactive row answers 404. Responds 204.
func (r *Resource[T]) SoftDelete(c *fiber.Ctx) error {
	return r.flipActive(c, true, false, "")
}

// Restore handles PUT /:id/restore, the inverse transition.
func (r *Resource[T]) Restore(c *fiber.Ctx, message string) error {
	return r.flipActive(c, false, true, message)
}

func (r *Resource[T]) flipActive(c *fiber.Ctx, from, to bool, message string) error {
	id, err := ParseID(c)
	if err != nil {
		return helper.Error(c, "Identifiant invalide", constants.StatusBadRequest)
	}
	actorID, err := helper.GetUserIDFromContext(c)
	if err != nil {
		return helper.Error(c, err.Error(), constants.StatusUnauthorized)
	}

	res := r.DB.Model(new(T)).
		Where("id = ? AND is_active = ?", id, from).
		Updates(map[string]interface{}{
			"is_active":     to,
			"updated_by_id": actorID,
		})
	if res.Error != nil {
		log.Printf("[ERROR] changement d'état: %v", res.Error)
		return helper.Error(c, "Erreur lors de la mise à jour", constants.StatusInternalServerError)
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, r.NotFound, constants.StatusNotFound)
	}
	if message == "" {
		return helper.NoContent(c)
	}
	return helper.Success(c, fiber.Map{"id": id}, constants.StatusOK, message)
}

// StatusError lets approval hooks choose the envelope status of their veto
// (capacity exhaustion answers CONFLICT, not BAD_REQUEST).
type StatusError struct {
	Key     string
	Message string
}

func (e *StatusError) Error() string { return e.Message }

// Approve handles PUT /:id/approve on an active row. Approval is idempotent
// in outcome but re-stamps approver and timestamp on every call. The pre
// hook can veto; the post hook runs after commit, typically to fire a
// notification.
func (r *Resource[T]) Approve(c *fiber.Ctx, message string, pre func(*T) error, post func(*T)) error {
	id, err := ParseID(c)
	if err != nil {
		return helper.Error(c, "Identifiant invalide", constants.StatusBadRequest)
	}
	actorID, err := helper.GetUserIDFromContext(c)
	if err != nil {
		return helper.Error(c, err.Error(), constants.StatusUnauthorized)
	}

	var row T
	if err := r.DB.First(&row, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, r.NotFound, constants.StatusNotFound)
		}
		log.Printf("[ERROR] lecture: %v", err)
		return helper.Error(c, "Erreur lors de la récupération des données", constants.StatusInternalServerError)
	}

	if pre != nil {
		if err := pre(&row); err != nil {
			var se *StatusError
			if errors.As(err, &se) {
				return helper.Error(c, se.Message, se.Key)
			}
			return helper.Error(c, err.Error(), constants.StatusBadRequest)
		}
	}

	now := time.Now()
	if err := r.DB.Model(new(T)).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_approved":    true,
			"approved_by_id": actorID,
			"approved_at":    now,
			"updated_by_id":  actorID,
		}).Error; err != nil {
		log.Printf("[ERROR] approbation: %v", err)
		return helper.Error(c, "Erreur lors de la mise à jour", constants.StatusInternalServerError)
	}

	if post != nil {
		post(&row)
	}
	return helper.Success(c, fiber.Map{"id": id, "approvedAt": now}, constants.StatusOK, message)
}

// ParseID reads and validates the :id route parameter.
func ParseID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}
