package users

import (
	"log"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	rolemodel "suas_backend/internals/features/users/role/model"
	"suas_backend/internals/features/users/user/model"
	helper "suas_backend/internals/helpers"
)

type UserSeed struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Role     string `json:"role"`
	IsAdmin  bool   `json:"isAdmin"`
	IsStaff  bool   `json:"isStaff"`
}

// SeedUsersFromJSON inserts bootstrap accounts, skipping emails already
// present. Passwords in the JSON are plaintext and hashed on insert, so
// the file must never carry real credentials.
func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[ERROR] lecture du fichier %s: %v", filePath, err)
	}

	var inputs []UserSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("[ERROR] decode de %s: %v", filePath, err)
	}

	for _, data := range inputs {
		var existing model.User
		if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("[ERROR] hash du mot de passe pour '%s': %v", data.Email, err)
			continue
		}

		ref, err := helper.GenerateReferenceNumber(db, model.User{}.TableName(), time.Now())
		if err != nil {
			log.Printf("[ERROR] reference pour '%s': %v", data.Email, err)
			continue
		}

		user := model.User{
			ReferenceNumber: ref,
			Username:        data.Username,
			Email:           data.Email,
			Phone:           data.Phone,
			Password:        string(hashed),
			Name:            data.Name,
			Surname:         data.Surname,
			IsAdmin:         data.IsAdmin,
			IsStaff:         data.IsStaff,
			IsActive:        true,
		}

		if data.Role != "" {
			var role rolemodel.UserRole
			if err := db.Where("name = ? AND is_active = ?", data.Role, true).First(&role).Error; err == nil {
				user.UserRoleID = &role.ID
			} else {
				log.Printf("[WARN] role '%s' introuvable pour '%s'", data.Role, data.Email)
			}
		}

		if err := db.Create(&user).Error; err != nil {
			log.Printf("[ERROR] insertion de l'utilisateur '%s': %v", data.Email, err)
		} else {
			log.Printf("[INFO] utilisateur '%s' insere", data.Email)
		}
	}
}
