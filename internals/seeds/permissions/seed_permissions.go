package permissions

import (
	"log"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"suas_backend/internals/features/permissions/permission/model"
	helper "suas_backend/internals/helpers"
)

type PermissionSeed struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SeedPermissionsFromJSON inserts the permission catalog, skipping names
// already present.
func SeedPermissionsFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[ERROR] lecture du fichier %s: %v", filePath, err)
	}

	var inputs []PermissionSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("[ERROR] decode de %s: %v", filePath, err)
	}

	for _, data := range inputs {
		var existing model.Permission
		if err := db.Where("name = ?", data.Name).First(&existing).Error; err == nil {
			continue
		}

		ref, err := helper.GenerateReferenceNumber(db, model.Permission{}.TableName(), time.Now())
		if err != nil {
			log.Printf("[ERROR] reference pour la permission '%s': %v", data.Name, err)
			continue
		}

		perm := model.Permission{
			ReferenceNumber: ref,
			Name:            data.Name,
			Description:     data.Description,
			IsActive:        true,
		}
		if err := db.Create(&perm).Error; err != nil {
			log.Printf("[ERROR] insertion de la permission '%s': %v", data.Name, err)
		} else {
			log.Printf("[INFO] permission '%s' inseree", data.Name)
		}
	}
}
