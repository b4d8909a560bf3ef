package models

// ProductSize is a variant: one (product, size) pair with its own price and
// stock. The composite unique index uq_product_size enforces at most one
// variant per pair; the SizeID foreign key is RESTRICT so a size in use
// cannot be deleted.
type ProductSize struct {
	ID        uint    `json:"-" gorm:"primaryKey"`
	ProductID uint    `json:"-" gorm:"not null;uniqueIndex:uq_product_size"`
	SizeID    uint    `json:"size_id" gorm:"not null;uniqueIndex:uq_product_size" validate:"required"`
	Size      *Size   `json:"-" gorm:"foreignKey:SizeID;constraint:OnDelete:RESTRICT"`
	SizeName  string  `json:"size_name" gorm:"-"`
	Price     float64 `json:"price" gorm:"not null;default:0" validate:"gte=0"`
	Stock     int     `json:"stock" gorm:"not null;default:0" validate:"gte=0"`
}

// ResolveSizeName copies the preloaded size's display name into the
// serialized SizeName field.
func (ps *ProductSize) ResolveSizeName() {
	if ps.Size != nil {
		ps.SizeName = ps.Size.Name
	}
}
