package dto

type CreateParticipantRoleRequest struct {
	Name           string   `json:"name" validate:"required,min=2,max=100"`
	PermissionList []string `json:"permissionList"`
}

type UpdateParticipantRoleRequest struct {
	Name           *string   `json:"name" validate:"omitempty,min=2,max=100"`
	PermissionList *[]string `json:"permissionList"`
}
