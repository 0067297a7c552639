package api

// swagger:model api.AssignRoleRequest
type AssignRoleRequest struct {
	UserID int `form:"user_id" validate:"required" example:"42"`
}
