package roles

import (
	"log"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"suas_backend/internals/features/users/role/model"
	helper "suas_backend/internals/helpers"
)

type UserRoleSeed struct {
	Name           string   `json:"name"`
	PermissionList []string `json:"permissionList"`
}

// SeedUserRolesFromJSON inserts the base roles, skipping names already
// present.
func SeedUserRolesFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[ERROR] lecture du fichier %s: %v", filePath, err)
	}

	var inputs []UserRoleSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("[ERROR] decode de %s: %v", filePath, err)
	}

	for _, data := range inputs {
		var existing model.UserRole
		if err := db.Where("name = ?", data.Name).First(&existing).Error; err == nil {
			continue
		}

		ref, err := helper.GenerateReferenceNumber(db, model.UserRole{}.TableName(), time.Now())
		if err != nil {
			log.Printf("[ERROR] reference pour le role '%s': %v", data.Name, err)
			continue
		}

		role := model.UserRole{
			ReferenceNumber: ref,
			Name:            data.Name,
			PermissionList:  pq.StringArray(data.PermissionList),
			IsActive:        true,
		}
		if err := db.Create(&role).Error; err != nil {
			log.Printf("[ERROR] insertion du role '%s': %v", data.Name, err)
		} else {
			log.Printf("[INFO] role '%s' insere", data.Name)
		}
	}
}
