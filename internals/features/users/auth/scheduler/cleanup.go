package scheduler

import (
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	"suas_backend/internals/configs"
	"suas_backend/internals/features/users/auth/model"
)

// StartCleanupScheduler prunes, once a day, blacklisted tokens older than
// TOKEN_BLACKLIST_TTL_DAYS (default 7) and reset tokens already used or
// expired for more than a day.
func StartCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if v := configs.GetEnv("TOKEN_BLACKLIST_TTL_DAYS"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				ttlDays = parsed
			}
		}

		for {
			cutoff := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)
			res := db.Where("created_at < ?", cutoff).Delete(&model.TokenBlacklist{})
			if res.Error != nil {
				log.Printf("[ERROR] purge blacklist: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[INFO] purge blacklist: %d jetons supprimés", res.RowsAffected)
			}

			res = db.Where("used = ? OR expires_at < ?", true, time.Now().Add(-24*time.Hour)).
				Delete(&model.PasswordResetToken{})
			if res.Error != nil {
				log.Printf("[ERROR] purge tokens de réinitialisation: %v", res.Error)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
