package models

// Review is a user's rating of a game, at most one per (user, game) pair.
// Ratings run 1 to 5 inclusive; the comment is optional and capped at 2000
// characters.
type Review struct {
	ID      string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID  string `json:"user_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_review_user_game"`
	GameID  string `json:"game_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_review_user_game"`
	Rating  int    `json:"rating" gorm:"not null" validate:"required,min=1,max=5"`
	Comment string `json:"comment" gorm:"type:varchar(2000)" validate:"omitempty,max=2000"`
}

// MaxCommentLength is the longest comment a review may carry.
const MaxCommentLength = 2000
