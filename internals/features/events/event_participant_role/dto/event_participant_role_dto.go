package dto

type CreateEventParticipantRoleRequest struct {
	Name           string   `json:"name" validate:"required,min=2,max=100"`
	PermissionList []string `json:"permissionList"`
}

type UpdateEventParticipantRoleRequest struct {
	Name           *string   `json:"name" validate:"omitempty,min=2,max=100"`
	PermissionList *[]string `json:"permissionList"`
}
