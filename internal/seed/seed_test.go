package seed_test

import (
	"fmt"
	"io"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yildirimsamet/simplestorage/internal/database"
	"github.com/yildirimsamet/simplestorage/internal/repositories"
	"github.com/yildirimsamet/simplestorage/internal/seed"
	"github.com/yildirimsamet/simplestorage/internal/services"
)

type fixture struct {
	userService     *services.UserService
	categoryService *services.CategoryService
	sizeService     *services.SizeService
	productService  *services.ProductService
}

func setup(t *testing.T) fixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return fixture{
		userService:     services.NewUserService(repositories.NewGORMUserRepository(db)),
		categoryService: services.NewCategoryService(repositories.NewGORMCategoryRepository(db), nil, nil),
		sizeService:     services.NewSizeService(repositories.NewGORMSizeRepository(db), nil, nil),
		productService:  services.NewProductService(repositories.NewGORMProductRepository(db), nil, nil),
	}
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestAll_PopulatesEmptyCatalog(t *testing.T) {
	f := setup(t)
	admin := seed.AdminConfig{Username: "admin", Password: "password123", Email: "admin@example.com"}

	seed.All(f.userService, f.categoryService, f.sizeService, f.productService, admin)

	user, err := f.userService.GetUserByUsername("admin")
	assert.NoError(t, err)
	assert.True(t, user.IsAdmin)

	categories, err := f.categoryService.GetAllCategories()
	assert.NoError(t, err)
	assert.Len(t, categories, 5)

	sizes, err := f.sizeService.GetSizes()
	assert.NoError(t, err)
	assert.Len(t, sizes, 8)
	assert.Equal(t, "XS", sizes[0].Name)
	assert.Equal(t, 1, sizes[0].DisplayOrder)

	products, err := f.productService.GetAllProducts()
	assert.NoError(t, err)
	assert.NotEmpty(t, products)
	for _, p := range products {
		assert.NotEmpty(t, p.Sizes, p.Name)
		for _, v := range p.Sizes {
			assert.NotEmpty(t, v.SizeName, p.Name)
		}
	}
}

func TestAll_IsIdempotent(t *testing.T) {
	f := setup(t)
	admin := seed.AdminConfig{Username: "admin", Password: "password123", Email: "admin@example.com"}

	seed.All(f.userService, f.categoryService, f.sizeService, f.productService, admin)

	before, err := f.productService.GetAllProducts()
	assert.NoError(t, err)

	// A second run against the populated catalog changes nothing.
	seed.All(f.userService, f.categoryService, f.sizeService, f.productService, admin)

	after, err := f.productService.GetAllProducts()
	assert.NoError(t, err)
	assert.Equal(t, before, after)

	categories, err := f.categoryService.GetAllCategories()
	assert.NoError(t, err)
	assert.Len(t, categories, 5)
}

func TestEnsureAdmin_SkipsBlankCredentials(t *testing.T) {
	f := setup(t)

	seed.EnsureAdmin(f.userService, seed.AdminConfig{})

	_, err := f.userService.GetUserByUsername("")
	assert.Error(t, err)
}
