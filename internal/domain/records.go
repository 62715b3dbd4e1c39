package domain

import "gorm.io/datatypes"

// All timestamps on local records are Unix epoch milliseconds, matching the
// catalog's notion of time. Nullable timestamps use *int64 so "never
// happened" is distinguishable from zero.

// Favorite marks a recipe as favorited. Existence of the row is the flag;
// unfavoriting hard-deletes it.
type Favorite struct {
	RecipeID  string `gorm:"primaryKey;column:recipe_id" json:"recipe_id"`
	CreatedAt int64  `gorm:"column:created_at;index" json:"created_at"`
}

// TableName keeps the collection name stable across gorm versions.
func (Favorite) TableName() string { return "favorites" }

// ShoppingItem is one ingredient on the shopping list. At most one row per
// (recipe, ingredient) pair; adding an existing pair is a no-op. Checked
// items are swept once CheckedAt is more than an hour in the past.
type ShoppingItem struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipeID     string `gorm:"column:recipe_id;index;uniqueIndex:idx_shopping_pair" json:"recipe_id"`
	IngredientID string `gorm:"column:ingredient_id;uniqueIndex:idx_shopping_pair" json:"ingredient_id"`
	CheckedAt    *int64 `gorm:"column:checked_at;index" json:"checked_at"`
	CreatedAt    int64  `gorm:"column:created_at" json:"created_at"`
}

func (ShoppingItem) TableName() string { return "shopping_list" }

// Checked reports whether the item has been ticked off.
func (s *ShoppingItem) Checked() bool { return s.CheckedAt != nil }

// CookingSession is one cook-through of a recipe. CompletedAt is set exactly
// once when the last step is finished; only completed sessions count toward
// statistics. RatedAt and RatingDismissedAt are mutually exclusive and record
// how the post-cook rating prompt was resolved, if ever.
type CookingSession struct {
	ID                uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipeID          string `gorm:"column:recipe_id;index" json:"recipe_id"`
	StartedAt         int64  `gorm:"column:started_at" json:"started_at"`
	CompletedAt       *int64 `gorm:"column:completed_at" json:"completed_at"`
	RatedAt           *int64 `gorm:"column:rated_at" json:"rated_at"`
	RatingDismissedAt *int64 `gorm:"column:rating_dismissed_at" json:"rating_dismissed_at"`
}

func (CookingSession) TableName() string { return "cooking_sessions" }

// Completed reports whether the session finished its last step.
func (c *CookingSession) Completed() bool { return c.CompletedAt != nil }

// Resolved reports whether the rating prompt for this session was answered
// or dismissed.
func (c *CookingSession) Resolved() bool {
	return c.RatedAt != nil || c.RatingDismissedAt != nil
}

// Rating is the single star rating for a recipe. A second rating overwrites
// in place, preserving the original CreatedAt.
type Rating struct {
	RecipeID  string `gorm:"primaryKey;column:recipe_id" json:"recipe_id"`
	Rating    int    `gorm:"column:rating" json:"rating"`
	CreatedAt int64  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt int64  `gorm:"column:updated_at" json:"updated_at"`
}

func (Rating) TableName() string { return "ratings" }

// CookingNote is the single free-text note for a recipe. Saving empty or
// whitespace-only text deletes the row instead of storing a blank.
type CookingNote struct {
	RecipeID  string `gorm:"primaryKey;column:recipe_id" json:"recipe_id"`
	Text      string `gorm:"column:text" json:"text"`
	UpdatedAt int64  `gorm:"column:updated_at" json:"updated_at"`
}

func (CookingNote) TableName() string { return "cooking_notes" }

// Setting is a small key/value record for scalars like the dietary filter
// list or the last-seen changelog id. Value holds arbitrary JSON.
type Setting struct {
	Key   string         `gorm:"primaryKey;column:key" json:"key"`
	Value datatypes.JSON `gorm:"column:value" json:"value"`
}

func (Setting) TableName() string { return "settings" }
