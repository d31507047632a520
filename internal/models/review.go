package models

import "time"

// Review rating and comment bounds enforced at submission time.
const (
	ReviewRatingMin     = 1
	ReviewRatingMax     = 5
	ReviewCommentMinLen = 5
	ReviewCommentMaxLen = 500
)

// Review is the buyer's feedback on a completed transaction. Each transaction
// carries at most one review; author and recipient are copied from the
// transaction record, never supplied by the caller.
type Review struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	TransactionID uint   `gorm:"not null;uniqueIndex" json:"transaction_id"`
	AuthorID      uint   `gorm:"not null;index" json:"author_id"`
	RecipientID   uint   `gorm:"not null;index" json:"recipient_id"`
	Rating        int    `gorm:"not null" json:"rating"`
	Comment       string `gorm:"type:varchar(500);not null" json:"comment"`

	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Author    User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Recipient User `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}
