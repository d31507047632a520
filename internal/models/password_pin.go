package models

import "time"

// PasswordPin is a six-digit credential-reset code bound to a user. Reissuing
// does not invalidate earlier pins; verification always consults the most
// recently issued row, and a successful reset consumes it.
type PasswordPin struct {
	ID        uint       `gorm:"primaryKey" json:"-"`
	UserID    uint       `gorm:"not null;index" json:"-"`
	Code      string     `gorm:"type:varchar(6);not null" json:"-"`
	UsedAt    *time.Time `json:"-"`
	CreatedAt time.Time  `json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
