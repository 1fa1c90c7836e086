package dto

import "github.com/yigit/advisory/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"3600"`
}

// AccountResponse represents the authenticated account
type AccountResponse struct {
	ID        int64  `json:"id" example:"1"`
	Email     string `json:"email" example:"john@uni.edu"`
	RoleType  string `json:"roleType" example:"STUDENT" enums:"ADMIN,ADVISER,STUDENT"`
	StudentID *int64 `json:"studentId,omitempty" example:"1"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token   TokenResponse   `json:"token"`
	Account AccountResponse `json:"account"`
}

// NewAccountResponse maps an account to its public shape
func NewAccountResponse(account *models.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID,
		Email:     account.Email,
		RoleType:  string(account.RoleType),
		StudentID: account.StudentID,
	}
}
