package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"suas_backend/internals/constants"
	"suas_backend/internals/features/users/user/dto"
	"suas_backend/internals/features/users/user/model"
	helper "suas_backend/internals/helpers"
	"suas_backend/internals/resource"
)

type UserController struct {
	DB       *gorm.DB
	validate *validator.Validate
	res      *resource.Resource[model.User]
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		DB:       db,
		validate: validator.New(),
		res: &resource.Resource[model.User]{
			DB: db,
			Opts: helper.ListOptions{
				SearchFields: []string{"username", "email", "name", "referenceNumber"},
				SortFields:   []string{"createdAt", "updatedAt", "username", "email", "name"},
				Filters:      []string{"userRoleId"},
				BoolFilters:  []string{"isActive", "isAdmin", "isStaff", "isOwner"},
				DateFields:   []string{"createdAt"},
				DefaultLimit: 10,
			},
			Preloads: []string{"UserRole"},
			NotFound: "Utilisateur introuvable",
		},
	}
}

func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if taken := ctrl.takenFields(req.Username, req.Email, req.Phone, req.Photo, nil); len(taken) > 0 {
		return helper.Error(c, "Déjà utilisé: "+strings.Join(taken, ", "), constants.StatusConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] hachage mot de passe: %v", err)
		return helper.Error(c, "", constants.StatusInternalServerError)
	}

	user := req.ToModel()
	user.Password = string(hashed)

	ref, err := helper.GenerateReferenceNumber(ctrl.DB, user.TableName(), time.Now())
	if err != nil {
		log.Printf("[ERROR] numéro de référence: %v", err)
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	user.ReferenceNumber = ref

	if actorID, err := helper.GetUserIDFromContext(c); err == nil {
		user.CreatedByID = &actorID
	}

	if err := ctrl.DB.Create(&user).Error; err != nil {
		log.Printf("[ERROR] création utilisateur: %v", err)
		return helper.Error(c, "Erreur lors de la création de l'utilisateur", constants.StatusInternalServerError)
	}
	return helper.Success(c, user, constants.StatusCreated, "Utilisateur créé avec succès")
}

func (ctrl *UserController) GetAll(c *fiber.Ctx) error {
	return ctrl.res.List(c)
}

func (ctrl *UserController) GetAllInactive(c *fiber.Ctx) error {
	return ctrl.res.ListInactive(c)
}

func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	return ctrl.res.GetByID(c)
}

func (ctrl *UserController) Update(c *fiber.Ctx) error {
	id, err := resource.ParseID(c)
	if err != nil {
		return helper.Error(c, "Identifiant invalide", constants.StatusBadRequest)
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.User
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, "Utilisateur introuvable", constants.StatusNotFound)
		}
		return helper.Error(c, "", constants.StatusInternalServerError)
	}

	username, email, phone, photo := "", "", "", ""
	if req.Username != nil {
		username = *req.Username
	}
	if req.Email != nil {
		email = *req.Email
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Photo != nil {
		photo = *req.Photo
	}
	if taken := ctrl.takenFields(username, email, phone, photo, &user.ID); len(taken) > 0 {
		return helper.Error(c, "Déjà utilisé: "+strings.Join(taken, ", "), constants.StatusConflict)
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return helper.Error(c, "Aucun champ à mettre à jour", constants.StatusBadRequest)
	}
	if actorID, err := helper.GetUserIDFromContext(c); err == nil {
		updates["updated_by_id"] = actorID
	}

	if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] mise à jour utilisateur: %v", err)
		return helper.Error(c, "Erreur lors de la mise à jour", constants.StatusInternalServerError)
	}

	fresh, err := ctrl.res.Load(id)
	if err != nil {
		return helper.Error(c, "", constants.StatusInternalServerError)
	}
	return helper.Success(c, fresh, constants.StatusOK, "Utilisateur mis à jour avec succès")
}

func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	return ctrl.res.SoftDelete(c)
}

func (ctrl *UserController) Restore(c *fiber.Ctx) error {
	return ctrl.res.Restore(c, "Utilisateur restauré avec succès")
}

// takenFields returns which of username/email/phone/photo are already taken
// by another user. Empty values are skipped.
func (ctrl *UserController) takenFields(username, email, phone, photo string, excludeID *uuid.UUID) []string {
	taken := []string{}
	check := func(column, value, label string) {
		if value == "" {
			return
		}
		q := ctrl.DB.Model(&model.User{}).Where(column+" = ?", value)
		if excludeID != nil {
			q = q.Where("id <> ?", *excludeID)
		}
		var n int64
		if err := q.Count(&n).Error; err == nil && n > 0 {
			taken = append(taken, label)
		}
	}
	check("username", username, "nom d'utilisateur")
	check("email", email, "email")
	check("phone", phone, "téléphone")
	check("photo", photo, "photo")
	return taken
}
