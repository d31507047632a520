package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ItemStatus represents the lifecycle state of a listing.
type ItemStatus string

const (
	// ItemStatusAvailable indicates the item can still be purchased.
	ItemStatusAvailable ItemStatus = "available"
	// ItemStatusBought indicates the item has been sold. The transition is
	// one-way; a bought item never becomes available again.
	ItemStatusBought ItemStatus = "bought"
)

// ItemCategory is one of the fixed marketplace categories.
type ItemCategory string

const (
	CategoryFish       ItemCategory = "Fish"
	CategoryFood       ItemCategory = "Food"
	CategoryTank       ItemCategory = "Tank"
	CategoryDecoration ItemCategory = "Decoration"
	CategoryUtilities  ItemCategory = "Utilities"
)

// Categories lists every valid item category in display order.
var Categories = []ItemCategory{
	CategoryFish,
	CategoryFood,
	CategoryTank,
	CategoryDecoration,
	CategoryUtilities,
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c ItemCategory) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Item represents a listing in the marketplace.
type Item struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	UserID      uint         `gorm:"not null;index" json:"user_id"`
	User        User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Name        string       `gorm:"not null" json:"name"`
	Description string       `gorm:"type:text;not null" json:"description"`
	Category    ItemCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	BasePrice   float64      `gorm:"not null" json:"base_price"`
	ImageURL    string       `json:"image_url"`
	Status      ItemStatus   `gorm:"type:varchar(10);not null;default:'available';index" json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// PriceLabel is not persisted; formatted at response time
	PriceLabel string `gorm:"-" json:"price_label,omitempty"`
	// PostedAgo is not persisted; humanized listing age at response time
	PostedAgo string `gorm:"-" json:"posted_ago,omitempty"`
	// Liked indicates whether the current requesting user liked this item (computed)
	Liked bool `gorm:"->" json:"liked"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
}

// Decorate fills the derived presentation fields relative to now.
func (i *Item) Decorate(now time.Time) {
	i.PriceLabel = fmt.Sprintf("%.2f", i.BasePrice)
	i.PostedAgo = HumanizeAge(now.Sub(i.CreatedAt))
}

// HumanizeAge renders a duration as "N seconds/minutes/hours/days ago".
func HumanizeAge(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return pluralizeAge(int(d.Seconds()), "second")
	case d < time.Hour:
		return pluralizeAge(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return pluralizeAge(int(d.Hours()), "hour")
	default:
		return pluralizeAge(int(d.Hours()/24), "day")
	}
}

func pluralizeAge(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// BeforeCreate defaults the status so callers cannot list an item as sold.
func (i *Item) BeforeCreate(_ *gorm.DB) error {
	if i.Status == "" {
		i.Status = ItemStatusAvailable
	}
	return nil
}
