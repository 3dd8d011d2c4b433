package models

// Game represents a game in the catalog. The game owns its tag association;
// the tag-to-games view is derived by repository queries so the two sides
// cannot drift apart.
type Game struct {
	ID   string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name string     `json:"name" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,min=1,max=255"`
	Tags []*GameTag `json:"tags,omitempty" gorm:"many2many:game_tags"`
}

// HasTag reports whether the tag is attached to the game.
func (g *Game) HasTag(tagID string) bool {
	for _, t := range g.Tags {
		if t.ID == tagID {
			return true
		}
	}
	return false
}

// AddTag attaches a tag. Attaching a tag twice is a no-op.
func (g *Game) AddTag(tag *GameTag) {
	if g.HasTag(tag.ID) {
		return
	}
	g.Tags = append(g.Tags, tag)
}

// RemoveTag detaches a tag. Detaching an absent tag is a no-op.
func (g *Game) RemoveTag(tagID string) {
	for i, t := range g.Tags {
		if t.ID == tagID {
			g.Tags = append(g.Tags[:i], g.Tags[i+1:]...)
			return
		}
	}
}
