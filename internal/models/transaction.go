package models

import "time"

// Transaction is an immutable ledger entry recording a purchase. Rows are only
// ever inserted; the value is the item's base price at purchase time.
type Transaction struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	BuyerID  uint    `gorm:"not null;index" json:"buyer_id"`
	SellerID uint    `gorm:"not null;index" json:"seller_id"`
	ItemID   uint    `gorm:"not null;index" json:"item_id"`
	Value    float64 `gorm:"not null" json:"value"`

	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Buyer  User `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
	Seller User `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Item   Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`

	// Reviewed indicates whether a review exists for this transaction (computed)
	Reviewed bool `gorm:"->" json:"reviewed"`
}
