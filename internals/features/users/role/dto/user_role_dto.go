package dto

type CreateUserRoleRequest struct {
	Name           string   `json:"name" validate:"required,min=2,max=100"`
	PermissionList []string `json:"permissionList"`
}

type UpdateUserRoleRequest struct {
	Name           *string   `json:"name" validate:"omitempty,min=2,max=100"`
	PermissionList *[]string `json:"permissionList"`
}
