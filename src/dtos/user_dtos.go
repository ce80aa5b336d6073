package dtos

import "github.com/FinDocs/FinDocs-Backend/src/models"

// UserDTO is the outward shape of a user. The password hash never crosses the
// API boundary.
type UserDTO struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Subscription string `json:"subscription"`
}

func NewUserDTO(user *models.UserModel) UserDTO {
	return UserDTO{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Subscription: user.Subscription,
	}
}
