package categories

import (
	"log"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"suas_backend/internals/features/events/category/model"
	helper "suas_backend/internals/helpers"
)

type CategorySeed struct {
	Name string `json:"name"`
}

// SeedCategoriesFromJSON inserts the default event categories, skipping
// names already present.
func SeedCategoriesFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[ERROR] lecture du fichier %s: %v", filePath, err)
	}

	var inputs []CategorySeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("[ERROR] decode de %s: %v", filePath, err)
	}

	for _, data := range inputs {
		var existing model.Category
		if err := db.Where("name = ?", data.Name).First(&existing).Error; err == nil {
			continue
		}

		ref, err := helper.GenerateReferenceNumber(db, model.Category{}.TableName(), time.Now())
		if err != nil {
			log.Printf("[ERROR] reference pour la categorie '%s': %v", data.Name, err)
			continue
		}

		category := model.Category{
			ReferenceNumber: ref,
			Name:            data.Name,
			IsActive:        true,
		}
		if err := db.Create(&category).Error; err != nil {
			log.Printf("[ERROR] insertion de la categorie '%s': %v", data.Name, err)
		} else {
			log.Printf("[INFO] categorie '%s' inseree", data.Name)
		}
	}
}
