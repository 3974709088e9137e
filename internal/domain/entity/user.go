// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the authorization level of a user account.
type Role string

const (
	// RoleUser is a regular marketplace user: may browse, favorite,
	// publish listings and take part in visit scheduling.
	RoleUser Role = "user"
	// RoleAdmin may additionally review and resolve listing reports.
	RoleAdmin Role = "admin"
)

// User represents a marketplace account. The same account acts as a
// visitor on other people's listings and as an owner on its own.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
