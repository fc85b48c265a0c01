package store

import "github.com/LaryssaDev/site-para-gueto-fya/models"

// SeedProducts is the bundled catalog used the first time the shop runs,
// or whenever the products slot is missing or unreadable.
func SeedProducts() []models.Product {
	apparel := []string{"P", "M", "G", "GG"}
	oneSize := []string{"U"}

	return []models.Product{
		{
			ID:          "1",
			Name:        "CAMISETA CHRONIC #1",
			Description: "✔️ 100% ORIGINAL",
			Price:       64.99,
			Category:    models.CategoryCamisetas,
			Stock:       50,
			Sizes:       apparel,
			Images:      []string{"https://i.imgur.com/2c7168K.png", "https://i.imgur.com/lCyxGCB.png"},
		},
		{
			ID:          "2",
			Name:        "CAMISETA CHRONIC #2",
			Description: "✔️ 100% ORIGINAL",
			Price:       64.99,
			Category:    models.CategoryCamisetas,
			Stock:       50,
			Sizes:       apparel,
			Images:      []string{"https://i.imgur.com/1ERKSbB.png", "https://i.imgur.com/NLquKDm.png"},
		},
		{
			ID:          "3",
			Name:        "CAMISETA CHRONIC #3",
			Description: "✔️ 100% ORIGINAL",
			Price:       64.99,
			Category:    models.CategoryCamisetas,
			Stock:       50,
			Sizes:       apparel,
			Images:      []string{"https://i.imgur.com/T818GPO.png", "https://i.imgur.com/8xYparx.png"},
		},
		{
			ID:          "4",
			Name:        "CAMISETA CHRONIC #4",
			Description: "✔️ 100% ORIGINAL",
			Price:       64.99,
			Category:    models.CategoryCamisetas,
			Stock:       50,
			Sizes:       apparel,
			Images:      []string{"https://i.imgur.com/8G4m80q.png", "https://i.imgur.com/jQz2dSl.png"},
		},
		{
			ID:          "5",
			Name:        "CAMISETA CHRONIC #5",
			Description: "✔️ 100% ORIGINAL",
			Price:       64.99,
			Category:    models.CategoryCamisetas,
			Stock:       50,
			Sizes:       apparel,
			Images:      []string{"https://i.imgur.com/JdmMMuc.png", "https://i.imgur.com/w9paFXw.png"},
		},
		{
			ID:          "6",
			Name:        "BONÉ CHRONIC STYLE",
			Description: "✔️ 100% ORIGINAL",
			Price:       90.00,
			Category:    models.CategoryBones,
			Stock:       30,
			Sizes:       oneSize,
			Images:      []string{"https://i.imgur.com/i1j2zkz.png"},
		},
		{
			ID:          "7",
			Name:        "BONÉ CHRONIC URBAN",
			Description: "✔️ 100% ORIGINAL",
			Price:       90.00,
			Category:    models.CategoryBones,
			Stock:       30,
			Sizes:       oneSize,
			Images:      []string{"https://i.imgur.com/j7TRXya.png"},
		},
		{
			ID:          "8",
			Name:        "BLUSA CHRONIC HOODIE #1",
			Description: "Conforto e estilo urbano.",
			Price:       150.00,
			Category:    models.CategoryMoletons,
			Stock:       20,
			Sizes:       apparel,
			Images:      []string{"https://i.imgur.com/sF84OSq.png", "https://i.imgur.com/EE9X9DH.png"},
		},
		{
			ID:          "9",
			Name:        "BLUSA CHRONIC HOODIE #2",
			Description: "Conforto e estilo urbano.",
			Price:       150.00,
			Category:    models.CategoryMoletons,
			Stock:       20,
			Sizes:       apparel,
			Images:      []string{"https://i.imgur.com/ajcwBju.png", "https://i.imgur.com/qYnCcuK.png"},
		},
		{
			ID:          "10",
			Name:        "SHORTS CHRONIC #1",
			Description: "✔️ 100% ORIGINAL - Alta durabilidade.",
			Price:       70.00,
			Category:    models.CategoryBermudas,
			Stock:       40,
			Sizes:       apparel,
			Images:      []string{"https://i.imgur.com/WpoJgbS.png", "https://i.imgur.com/aCyQPXm.png"},
		},
		{
			ID:          "11",
			Name:        "SHORTS CHRONIC #2",
			Description: "✔️ 100% ORIGINAL - Alta durabilidade.",
			Price:       70.00,
			Category:    models.CategoryBermudas,
			Stock:       40,
			Sizes:       apparel,
			Images:      []string{"https://i.imgur.com/7iIJ6ve.png", "https://i.imgur.com/HO1DBMs.png"},
		},
	}
}
