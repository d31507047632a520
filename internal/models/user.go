// Package models contains data structures for the application's domain models.
package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// NoReviewsSentinel is the rating label for a seller nobody has reviewed yet.
const NoReviewsSentinel = "No reviews yet"

// User represents a registered marketplace account.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Bio       string         `json:"bio"`
	Avatar    string         `json:"avatar"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Items     []Item         `gorm:"foreignKey:UserID" json:"items,omitempty"`

	// Rating is not persisted; computed at query time from received reviews
	Rating string `gorm:"-" json:"rating,omitempty"`
	// Ratings is the count of received reviews (computed)
	Ratings int64 `gorm:"-" json:"ratings"`
	// Followers/Following counts are computed at query time
	FollowerCount  int64 `gorm:"-" json:"follower_count"`
	FollowingCount int64 `gorm:"-" json:"following_count"`
}

// ApplyRating fills the derived rating fields from an aggregate query result.
// A seller with no reviews gets the sentinel label rather than "0.0".
func (u *User) ApplyRating(average float64, count int64) {
	u.Ratings = count
	if count == 0 {
		u.Rating = NoReviewsSentinel
		return
	}
	u.Rating = fmt.Sprintf("%.1f", average)
}
