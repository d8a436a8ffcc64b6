package dto

import "github.com/kaanbk/registrar/internal/app/models"

// RegisterRequest carries a new account registration
type RegisterRequest struct {
	Email        string          `json:"email" binding:"required,email"`
	Password     string          `json:"password" binding:"required,min=8"`
	FirstName    string          `json:"firstName" binding:"required"`
	LastName     string          `json:"lastName" binding:"required"`
	RoleType     models.RoleType `json:"roleType" binding:"required,oneof=STUDENT INSTRUCTOR"`
	DepartmentID int64           `json:"departmentId" binding:"required,gt=0"`

	// Student-only
	Identifier string `json:"identifier,omitempty"`
	// Instructor-only
	Title string `json:"title,omitempty"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries a refresh token exchange
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn"`
	RefreshExpiresIn int    `json:"refreshExpiresIn"`
}
