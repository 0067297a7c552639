package api

// swagger:model api.ErrorResponse
type ErrorResponse struct {
	// Field names the form field the error is scoped to, when there is one.
	Field   string `json:"field,omitempty" example:"username"`
	Message string `json:"message" example:"Username already registered"`
}
