package seeders

import (
	"log"

	"github.com/jmarinco/go-inventario/app/db/fakers"
	"github.com/jmarinco/go-inventario/app/models"
	"gorm.io/gorm"
)

// DBSeed populates a fresh database with one demo owner, a few categories,
// two folders and a spread of products, enough to exercise the reports.
func DBSeed(db *gorm.DB) error {
	user := fakers.UserFaker()
	user.Email = "demo@inventario.local"
	if err := db.FirstOrCreate(user, "email = ?", user.Email).Error; err != nil {
		return err
	}
	log.Printf("Seeder: demo user %s (%s)", user.Email, user.ID)

	categories := make([]*models.Category, 0, 4)
	for i := 0; i < 4; i++ {
		c := fakers.CategoryFaker(user.ID, i)
		if err := db.FirstOrCreate(c, "user_id = ? AND name = ?", user.ID, c.Name).Error; err != nil {
			return err
		}
		categories = append(categories, c)
	}

	bodega := fakers.FolderFaker(user.ID, nil)
	bodega.Name = "Bodega"
	if err := db.Create(bodega).Error; err != nil {
		return err
	}
	estante := fakers.FolderFaker(user.ID, &bodega.ID)
	estante.Name = "Estante A"
	if err := db.Create(estante).Error; err != nil {
		return err
	}

	folderIDs := []*string{nil, &bodega.ID, &estante.ID}
	for i := 0; i < 24; i++ {
		category := categories[i%len(categories)]
		product := fakers.ProductFaker(user.ID, category, folderIDs[i%len(folderIDs)], i+1)
		if err := db.Create(product).Error; err != nil {
			return err
		}
	}

	log.Println("Seeder: 24 products created")
	return nil
}
