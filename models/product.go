package models

// Category is one of the fixed catalog categories shown in the shop menu.
type Category string

const (
	CategoryCamisetas Category = "Camisetas"
	CategoryBones     Category = "Bonés"
	CategoryMoletons  Category = "Moletons"
	CategoryBermudas  Category = "Bermudas"
	CategoryCalcas    Category = "Calças"
	CategoryToucas    Category = "Toucas"
	CategoryCuecas    Category = "Cuecas"
	CategoryBags      Category = "Bags"
)

// Categories lists every valid category, in menu order.
var Categories = []Category{
	CategoryCamisetas,
	CategoryBones,
	CategoryMoletons,
	CategoryBermudas,
	CategoryCalcas,
	CategoryToucas,
	CategoryCuecas,
	CategoryBags,
}

// AvailableSizes are the size labels a product may offer.
var AvailableSizes = []string{"P", "M", "G", "GG", "XG", "U"}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product is a catalog entry. Orders keep their own copy of the product
// fields, so editing or deleting a product never touches placed orders.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	Category    Category `json:"category"`
	Stock       int      `json:"stock"`
	Sizes       []string `json:"sizes"`
}
