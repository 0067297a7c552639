package api

import (
	"time"

	"account-service/internal/model"
)

// swagger:model api.RoleResponse
type RoleResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"editor"`
	UserID    *int      `json:"user_id" example:"42"`
	CreatedAt time.Time `json:"created_at"`
}

func NewRoleResponse(r model.Role) RoleResponse {
	return RoleResponse{
		ID:        r.ID,
		Name:      r.Name,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
	}
}
