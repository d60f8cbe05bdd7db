// models/user.go
package models

import (
	"time"
)

// User roles. Role is fixed at creation.
const (
	RoleBreeder   = "breeder"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	// Either an scrypt "hash.salt" pair or, for seed rows only, plain text.
	Password  string    `gorm:"not null" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	Role      string    `gorm:"not null;default:'breeder';size:20" json:"role"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Birds       []Bird       `gorm:"foreignKey:OwnerID" json:"birds,omitempty"`
	Tournaments []Tournament `gorm:"foreignKey:OrganizerID" json:"tournaments,omitempty"`
}

// IsOrganizer reports whether the user may create tournaments.
func (u *User) IsOrganizer() bool {
	return u.Role == RoleOrganizer || u.Role == RoleAdmin
}

func (User) TableName() string {
	return "users"
}
