package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DisplayName string     `gorm:"type:varchar(120);not null" json:"display_name"`
	Timezone    string     `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	PartnerID   *uuid.UUID `gorm:"type:uuid;index" json:"partner_id,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=120"`
	Timezone    string `json:"timezone" validate:"required,timezone"`
}

// LinkPartnerRequest is the request body for linking two users as partners.
// Linking is symmetric: both users end up pointing at each other.
type LinkPartnerRequest struct {
	PartnerID uuid.UUID `json:"partner_id" validate:"required"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	DisplayName string     `json:"display_name"`
	Timezone    string     `json:"timezone"`
	PartnerID   *uuid.UUID `json:"partner_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Timezone:    u.Timezone,
		PartnerID:   u.PartnerID,
		CreatedAt:   u.CreatedAt,
	}
}
