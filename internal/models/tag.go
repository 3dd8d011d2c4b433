package models

// GameTag represents a catalog tag (e.g. "RPG", "Action"). Names are stored
// with their original casing but compared case-insensitively for uniqueness.
type GameTag struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name string `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=1,max=100"`
}

// TableName keeps the entity table apart from the game_tags join table.
func (GameTag) TableName() string {
	return "tags"
}
