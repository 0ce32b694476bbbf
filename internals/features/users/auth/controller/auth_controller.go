package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"suas_backend/internals/configs"
	"suas_backend/internals/constants"
	"suas_backend/internals/features/users/auth/dto"
	"suas_backend/internals/features/users/auth/model"
	usermodel "suas_backend/internals/features/users/user/model"
	helper "suas_backend/internals/helpers"
	"suas_backend/internals/services/mailer"
)

const (
	tokenTTL      = 365 * 24 * time.Hour
	resetTokenTTL = 15 * time.Minute
)

type AuthController struct {
	DB       *gorm.DB
	Config   configs.Config
	Mailer   *mailer.Mailer
	validate *validator.Validate
}

func NewAuthController(db *gorm.DB, cfg configs.Config, m *mailer.Mailer) *AuthController {
	return &AuthController{DB: db, Config: cfg, Mailer: m, validate: validator.New()}
}

// Login authenticates by username, email or phone and issues a one-year
// HS256 token carrying the user id.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user usermodel.User
	err := ctrl.DB.
		Where("is_active = ?", true).
		Where("username = ? OR email = ? OR phone = ?", req.Identifier, req.Identifier, req.Identifier).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, "Identifiants invalides", constants.StatusUnauthorized)
		}
		log.Printf("[ERROR] recherche utilisateur: %v", err)
		return helper.Error(c, "", constants.StatusInternalServerError)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return helper.Error(c, "Identifiants invalides", constants.StatusUnauthorized)
	}

	claims := jwt.MapClaims{
		"userId": user.ID.String(),
		"exp":    time.Now().Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ctrl.Config.JWTSecret))
	if err != nil {
		log.Printf("[ERROR] signature jeton: %v", err)
		return helper.Error(c, "", constants.StatusInternalServerError)
	}

	return helper.Success(c, fiber.Map{
		"token": token,
		"user":  user,
	}, constants.StatusOK, "Connexion réussie")
}

// Logout revokes the presented token by blacklisting it.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	token, ok := c.Locals("token").(string)
	if !ok || token == "" {
		return helper.Error(c, "Jeton manquant", constants.StatusUnauthorized)
	}

	entry := model.TokenBlacklist{Token: token}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		// Already blacklisted counts as logged out.
		log.Printf("[WARN] insertion blacklist: %v", err)
	}
	return helper.Success(c, nil, constants.StatusOK, "Déconnexion réussie")
}

// ForgotPassword issues a single-use reset token and emails the link. The
// response never reveals whether the address exists; mail failure is only
// logged.
func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	response := func() error {
		return helper.Success(c, nil, constants.StatusOK,
			"Si un compte existe pour cette adresse, un email a été envoyé")
	}

	var user usermodel.User
	if err := ctrl.DB.Where("email = ? AND is_active = ?", req.Email, true).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] recherche utilisateur: %v", err)
		}
		return response()
	}

	reset := model.PasswordResetToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := ctrl.DB.Create(&reset).Error; err != nil {
		log.Printf("[ERROR] création token de réinitialisation: %v", err)
		return response()
	}

	link := configs.GetEnv("FRONTEND_URL", "http://localhost:5173") + "/reset-password?token=" + reset.Token
	ctrl.Mailer.SendAsync(user.Email,
		"Réinitialisation de votre mot de passe",
		"Réinitialisation du mot de passe",
		"Pour choisir un nouveau mot de passe, cliquez sur le lien suivant (valable 15 minutes) : <a href=\""+link+"\">réinitialiser</a>")

	return response()
}

// ResetPassword consumes a reset token and stores the new bcrypt hash.
func (ctrl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, "Format de requête invalide", constants.StatusBadRequest)
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var reset model.PasswordResetToken
	if err := ctrl.DB.Where("token = ?", req.Token).First(&reset).Error; err != nil {
		return helper.Error(c, "Lien invalide ou expiré", constants.StatusBadRequest)
	}
	if reset.Used || time.Now().After(reset.ExpiresAt) {
		return helper.Error(c, "Lien invalide ou expiré", constants.StatusBadRequest)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] hachage mot de passe: %v", err)
		return helper.Error(c, "", constants.StatusInternalServerError)
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&usermodel.User{}).
			Where("id = ?", reset.UserID).
			Update("password", string(hashed)).Error; err != nil {
			return err
		}
		return tx.Model(&reset).Update("used", true).Error
	})
	if err != nil {
		log.Printf("[ERROR] réinitialisation mot de passe: %v", err)
		return helper.Error(c, "", constants.StatusInternalServerError)
	}

	return helper.Success(c, nil, constants.StatusOK, "Mot de passe réinitialisé avec succès")
}

// Me returns the profile of the authenticated user.
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromContext(c)
	if err != nil {
		return helper.Error(c, err.Error(), constants.StatusUnauthorized)
	}
	var user usermodel.User
	if err := ctrl.DB.Preload("UserRole").First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, "Utilisateur introuvable", constants.StatusNotFound)
	}
	return helper.Success(c, user)
}
