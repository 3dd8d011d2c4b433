package models

import "time"

// Purchase is an immutable record of a completed ownership transfer. At most
// one purchase may ever exist per (user, game) pair; the composite unique
// index backs the in-service check.
type Purchase struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string    `json:"user_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_purchase_user_game"`
	GameID      string    `json:"game_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_purchase_user_game"`
	PriceCents  int64     `json:"price_cents" gorm:"not null"`
	PurchasedAt time.Time `json:"purchased_at" gorm:"not null"`
}
