package api

// swagger:model api.CreateRoleRequest
type CreateRoleRequest struct {
	Name string `form:"name" validate:"required" example:"editor"`
}
