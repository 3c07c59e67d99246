package request

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=guest staff admin"`
}

type PermissionRequest struct {
	Permission string `json:"permission" binding:"required"`
}
