package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LaryssaDev/site-para-gueto-fya/models"
	"github.com/LaryssaDev/site-para-gueto-fya/store"
)

type ProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Category    string   `json:"category" binding:"required"`
	Stock       int      `json:"stock"`
	Sizes       []string `json:"sizes"`
	Images      []string `json:"images"`
}

// GET /products
func GetProducts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := s.Products()

		// Optional ?category= filter for the shop menu
		if category := c.Query("category"); category != "" {
			filtered := products[:0]
			for _, p := range products {
				if string(p.Category) == category {
					filtered = append(filtered, p)
				}
			}
			products = filtered
		}

		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
func GetProductByID(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := s.ProductByID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// POST /admin/products
func CreateProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, ok := bindProduct(c)
		if !ok {
			return
		}

		product := s.AddProduct(input)
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /admin/products/:id
func UpdateProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, ok := bindProduct(c)
		if !ok {
			return
		}
		input.ID = c.Param("id")

		if err := s.UpdateProduct(input); err != nil {
			if errors.Is(err, store.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, input)
	}
}

// DELETE /admin/products/:id
func DeleteProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.RemoveProduct(c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

func bindProduct(c *gin.Context) (models.Product, bool) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return models.Product{}, false
	}

	category := models.Category(input.Category)
	if !category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return models.Product{}, false
	}

	images := input.Images
	if len(images) == 0 {
		images = []string{"https://via.placeholder.com/300"}
	}

	return models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    category,
		Stock:       input.Stock,
		Sizes:       input.Sizes,
		Images:      images,
	}, true
}
