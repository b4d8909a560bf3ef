// Package seed populates an empty catalog at startup. Every step is
// idempotent: it checks for existing rows first and logs rather than fails,
// so a restart against a populated database is a no-op.
package seed

import (
	"log"

	"github.com/yildirimsamet/simplestorage/internal/models"
	"github.com/yildirimsamet/simplestorage/internal/services"
)

// AdminConfig holds the bootstrap admin account credentials.
type AdminConfig struct {
	Username string
	Password string
	Email    string
}

// EnsureAdmin creates the bootstrap admin account if it does not exist yet.
func EnsureAdmin(userService *services.UserService, cfg AdminConfig) {
	if cfg.Username == "" || cfg.Password == "" {
		return
	}
	if _, err := userService.GetUserByUsername(cfg.Username); err == nil {
		return
	}
	if _, err := userService.CreateUser(cfg.Username, cfg.Email, cfg.Password, true); err != nil {
		log.Printf("Seed admin user error: %v", err)
	}
}

// Categories seeds the default categories when none exist.
func Categories(categoryService *services.CategoryService) {
	existing, err := categoryService.GetAllCategories()
	if err != nil || len(existing) > 0 {
		return
	}

	for _, name := range []string{"Electronics", "Clothing", "Books", "Sports", "Home"} {
		if _, err := categoryService.CreateCategory(name); err != nil {
			log.Printf("Seed category %s error: %v", name, err)
		}
	}
}

// Sizes seeds the default sizes when none exist; display order follows the
// listing order.
func Sizes(sizeService *services.SizeService) {
	existing, err := sizeService.GetSizes()
	if err != nil || len(existing) > 0 {
		return
	}

	names := []string{"XS", "S", "M", "L", "XL", "XXL", "Black", "Orange"}
	for i, name := range names {
		if _, err := sizeService.CreateSize(name, i+1); err != nil {
			log.Printf("Seed size %s error: %v", name, err)
		}
	}
}

type seedVariant struct {
	sizeName string
	price    float64
	stock    int
}

type seedProduct struct {
	name        string
	description string
	category    string
	variants    []seedVariant
}

// Products seeds the demo catalog when no products exist. Categories and
// sizes must already be seeded.
func Products(productService *services.ProductService, categoryService *services.CategoryService, sizeService *services.SizeService) {
	existing, err := productService.GetAllProducts()
	if err != nil || len(existing) > 0 {
		return
	}

	categories, err := categoryService.GetAllCategories()
	if err != nil || len(categories) == 0 {
		return
	}
	sizes, err := sizeService.GetSizes()
	if err != nil || len(sizes) == 0 {
		return
	}

	categoryIDs := map[string]uint{}
	for _, c := range categories {
		categoryIDs[c.Name] = c.ID
	}
	sizeIDs := map[string]uint{}
	for _, s := range sizes {
		sizeIDs[s.Name] = s.ID
	}

	catalog := []seedProduct{
		{"Headphone", "High quality wireless headphones", "Electronics", []seedVariant{
			{"Black", 200, 50}, {"Orange", 200, 50},
		}},
		{"Smart Watch", "Heart rate monitor smart watch", "Electronics", []seedVariant{
			{"Black", 300, 30}, {"Orange", 300, 45},
		}},
		{"T-Shirt", "Cotton comfortable t-shirt", "Clothing", []seedVariant{
			{"S", 40, 100}, {"M", 40, 120}, {"L", 40, 90}, {"XL", 40, 60},
		}},
		{"Running Shoes", "Lightweight running shoes", "Sports", []seedVariant{
			{"M", 50, 40}, {"L", 50, 50}, {"XL", 50, 35},
		}},
		{"Programming Book", "Complete guide to programming for beginners", "Books", []seedVariant{
			{"M", 55, 200},
		}},
		{"Coffee Maker", "Coffee maker for home use", "Home", []seedVariant{
			{"M", 84, 25},
		}},
		{"Yoga Mat", "Yoga mat for home use", "Sports", []seedVariant{
			{"M", 33, 80},
		}},
		{"Jeans", "Jeans for home use", "Clothing", []seedVariant{
			{"S", 66, 60}, {"M", 66, 75}, {"L", 66, 70}, {"XL", 66, 50}, {"XXL", 66, 40},
		}},
	}

	for _, item := range catalog {
		product := &models.Product{
			Name:        item.name,
			Description: item.description,
			CategoryID:  categoryIDs[item.category],
		}
		if err := productService.CreateProduct(product); err != nil {
			log.Printf("Seed product %s error: %v", item.name, err)
			continue
		}
		for _, v := range item.variants {
			if _, err := productService.AddSizeToProduct(product.ID, sizeIDs[v.sizeName], v.price, v.stock); err != nil {
				log.Printf("Seed variant %s/%s error: %v", item.name, v.sizeName, err)
			}
		}
	}
}

// All runs every seed step in dependency order.
func All(userService *services.UserService, categoryService *services.CategoryService, sizeService *services.SizeService, productService *services.ProductService, admin AdminConfig) {
	EnsureAdmin(userService, admin)
	Categories(categoryService)
	Sizes(sizeService)
	Products(productService, categoryService, sizeService)
}
