package seeds

import (
	"gorm.io/gorm"

	categories "suas_backend/internals/seeds/events/categories"
	"suas_backend/internals/seeds/permissions"
	roles "suas_backend/internals/seeds/users/roles"
	users "suas_backend/internals/seeds/users/users"
)

// RunAllSeeds loads the bootstrap data in dependency order: permissions
// before the roles that reference them, roles before the users they are
// assigned to.
func RunAllSeeds(db *gorm.DB) {
	permissions.SeedPermissionsFromJSON(db, "internals/seeds/permissions/data_permissions.json")
	roles.SeedUserRolesFromJSON(db, "internals/seeds/users/roles/data_user_roles.json")
	users.SeedUsersFromJSON(db, "internals/seeds/users/users/data_users.json")
	categories.SeedCategoriesFromJSON(db, "internals/seeds/events/categories/data_categories.json")
}
