package helper

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

const referenceBase = 10001

// GenerateReferenceNumber issues the next reference for the given table,
// formatted {n}/{MM}/{yyyy}. The counter restarts each calendar month by
// counting existing references carrying the current month suffix.
func GenerateReferenceNumber(db *gorm.DB, table string, now time.Time) (string, error) {
	suffix := monthSuffix(now)

	var count int64
	if err := db.Table(table).
		Where("reference_number LIKE ?", "%"+suffix).
		Count(&count).Error; err != nil {
		return "", err
	}

	return formatReference(count, suffix), nil
}

func monthSuffix(now time.Time) string {
	return fmt.Sprintf("/%02d/%d", now.Month(), now.Year())
}

func formatReference(count int64, suffix string) string {
	return fmt.Sprintf("%d%s", referenceBase+count, suffix)
}
