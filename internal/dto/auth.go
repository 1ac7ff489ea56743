package dto

// LoginRequest carries the shared dashboard passcode.
type LoginRequest struct {
	Passcode string `json:"passcode" binding:"required"`
}

// LoginResponse returns the signed access token.
type LoginResponse struct {
	Token string `json:"token"`
}
