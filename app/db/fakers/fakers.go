package fakers

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jmarinco/go-inventario/app/helpers"
	"github.com/jmarinco/go-inventario/app/models"
	"github.com/jmarinco/go-inventario/app/utils/calc"
	"github.com/shopspring/decimal"
)

var sampleCategories = []struct {
	Name   string
	Prefix string
	Color  string
}{
	{"Ferretería", "FER", "amber"},
	{"Ropa", "ROP", "rose"},
	{"Electrónica", "ELE", "blue"},
	{"Hogar", "HOG", "emerald"},
}

func UserFaker() *models.User {
	return &models.User{
		ID:       uuid.New().String(),
		Name:     faker.Name(),
		Email:    strings.ToLower(faker.Email()),
		Password: helpers.HashPassword("password123"),
	}
}

func CategoryFaker(userID string, i int) *models.Category {
	c := sampleCategories[i%len(sampleCategories)]
	return &models.Category{
		ID:     uuid.New().String(),
		UserID: userID,
		Name:   c.Name,
		Prefix: c.Prefix,
		Margin: calc.HistoricalMarginRate,
		Color:  c.Color,
	}
}

func FolderFaker(userID string, parentID *string) *models.Folder {
	name := faker.Word()
	prefix := strings.ToUpper(slug.Make(name))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return &models.Folder{
		ID:       uuid.New().String(),
		UserID:   userID,
		Name:     strings.Title(name),
		ParentID: parentID,
		Color:    "slate",
		Prefix:   prefix,
		Margin:   calc.HistoricalMarginRate,
	}
}

func ProductFaker(userID string, category *models.Category, folderID *string, seq int) *models.Product {
	name := faker.Word() + " " + faker.Word()
	price := decimal.NewFromFloat(float64(rand.Intn(95000)+500) / 100)
	entry := time.Now().AddDate(0, 0, -rand.Intn(120))

	return &models.Product{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      strings.Title(name),
		Brand:     faker.LastName(),
		Category:  category.Name,
		Sku:       fmt.Sprintf("%s-%03d", category.Prefix, seq),
		Cost:      calc.EstimateCost(price),
		Price:     price,
		Stock:     rand.Intn(50),
		ImageURL:  "https://placehold.co/400x400?text=" + slug.Make(name),
		EntryDate: &entry,
		FolderID:  folderID,
	}
}
