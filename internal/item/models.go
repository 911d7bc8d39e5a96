package item

import "gorm.io/gorm"

// MaxNameLen is the schema bound on Item.Name (VARCHAR(128) in the
// 0001_create_items migration).
const MaxNameLen = 128

// Item is the single persisted entity of this service: a named record
// created once and looked up by exact name.
type Item struct {
	// gorm.Model carries ID, CreatedAt, UpdatedAt, DeletedAt.
	gorm.Model

	Name string `gorm:"size:128;uniqueIndex;not null" json:"name"`
}

// String returns the item's name unchanged.
func (i Item) String() string {
	return i.Name
}
