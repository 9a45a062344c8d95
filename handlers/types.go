// SPDX-License-Identifier: GPL-3.0-only

package handlers

// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	Name string `json:"name" example:"Ada Lovelace"`
	// Telephone number, 10-15 digits
	// required: true
	Telephone string `json:"telephone" example:"1234567890"`
	// Email address
	// required: true
	Email string `json:"email" example:"ada@example.com"`
	// Nickname
	// required: true
	Nickname string `json:"nickname" example:"ada"`
	// Password, at least 6 characters
	// required: true
	Password string `json:"password" example:"secret1"`
}

// swagger:model RegisterResponse
type RegisterResponse struct {
	// Message indicating successful registration
	Message string `json:"message" example:"User registered successfully. Please check your email for verification link."`
	// Identifier of the new account
	UserID uint `json:"userId" example:"1"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	// Email address
	Email string `json:"email" example:"ada@example.com"`
	// Password
	Password string `json:"password" example:"secret1"`
}

// swagger:model VerifiedUser
type VerifiedUser struct {
	ID    uint   `json:"id" example:"1"`
	Name  string `json:"name" example:"Ada Lovelace"`
	Email string `json:"email" example:"ada@example.com"`
}

// swagger:model VerifyResponse
type VerifyResponse struct {
	// Message confirming the verification
	Message string `json:"message" example:"Thank you for confirming your registration"`
	// Public identity of the verified account
	User VerifiedUser `json:"user"`
}

// swagger:model LoginUser
type LoginUser struct {
	ID       uint   `json:"id" example:"1"`
	Name     string `json:"name" example:"Ada Lovelace"`
	Email    string `json:"email" example:"ada@example.com"`
	Nickname string `json:"nickname" example:"ada"`
}

// swagger:model LoginResponse
type LoginResponse struct {
	// Message indicating successful login
	Message string `json:"message" example:"Login successful"`
	// Public profile of the authenticated account
	User LoginUser `json:"user"`
}

// swagger:model ProfileUser
type ProfileUser struct {
	ID        uint   `json:"id" example:"1"`
	Name      string `json:"name" example:"Ada Lovelace"`
	Email     string `json:"email" example:"ada@example.com"`
	Nickname  string `json:"nickname" example:"ada"`
	CreatedAt string `json:"created_at" example:"2023-10-01T12:00:00Z"`
}

// swagger:model ProfileResponse
type ProfileResponse struct {
	// Public profile of a verified account
	User ProfileUser `json:"user"`
}

// swagger:model HealthResponse
type HealthResponse struct {
	// Health status
	Status string `json:"status" example:"OK"`
	// Human-readable status message
	Message string `json:"message" example:"GreetMe API is running"`
	// Server time in RFC 3339
	Timestamp string `json:"timestamp" example:"2023-10-01T12:00:00Z"`
}
