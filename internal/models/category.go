package models

// Category groups products. Deleting a category that still has products is
// rejected by the RESTRICT foreign key on Product.CategoryID.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,min=1,max=100"`
}
