package models

// Size is a named variant axis (S, M, L, a color, ...). DisplayOrder is a
// unique integer rank that controls UI sort order; the unique index is what
// ultimately guarantees no two sizes share a rank.
type Size struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,min=1,max=100"`
	DisplayOrder int    `json:"display_order" gorm:"uniqueIndex;not null"`
}
