package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  UserWithProfile `json:"user"`
}

// CartSummary accompanies every cart response so the client can render
// the badge and total without recomputing.
type CartSummary struct {
	TotalItems int     `json:"total_items"`
	TotalPrice float64 `json:"total_price"`
}
