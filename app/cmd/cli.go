package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jmarinco/go-inventario/app/configs"
	"github.com/jmarinco/go-inventario/app/db/seeders"
	"github.com/jmarinco/go-inventario/app/models"
	"github.com/jmarinco/go-inventario/app/models/migrations"
	"github.com/jmarinco/go-inventario/app/repositories"
	"github.com/jmarinco/go-inventario/app/services"
	"github.com/jmarinco/go-inventario/app/store"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed the database with demo data",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					log.Println("✅ Seeding complete")
					return nil
				},
			},
			{
				Name:      "import",
				Usage:     "Import products from a CSV file for the given owner",
				ArgsUsage: "<file.csv>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Usage: "Owner account email", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return fmt.Errorf("usage: import --email <email> <file.csv>")
					}
					content, err := os.ReadFile(c.Args().First())
					if err != nil {
						return err
					}

					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}

					userRepo := repositories.NewUserRepository(db)
					user, err := userRepo.FindByEmail(ctx, c.String("email"))
					if err != nil {
						return err
					}
					if user == nil {
						return fmt.Errorf("no user with email %s", c.String("email"))
					}

					productRepo := repositories.NewProductRepository(db)
					categoryRepo := repositories.NewCategoryRepository(db)

					categoryRows, err := categoryRepo.GetAll(ctx, user.ID)
					if err != nil {
						return err
					}
					existing := make([]store.CategoryConfig, len(categoryRows))
					for i, row := range categoryRows {
						existing[i] = row.Domain()
					}
					count, err := productRepo.Count(ctx, user.ID)
					if err != nil {
						return err
					}

					outcome := services.NewImportService().Parse(string(content), existing, int(count))

					if len(outcome.NewCategories) > 0 {
						rows := make([]models.Category, len(outcome.NewCategories))
						for i, cat := range outcome.NewCategories {
							rows[i] = models.FromCategory(user.ID, cat)
						}
						if err := categoryRepo.InsertBatch(ctx, rows); err != nil {
							return err
						}
					}
					if len(outcome.Products) > 0 {
						rows := make([]models.Product, len(outcome.Products))
						for i, p := range outcome.Products {
							rows[i] = models.FromProduct(user.ID, p)
						}
						if err := productRepo.InsertBatch(ctx, rows); err != nil {
							return err
						}
					}

					log.Printf("✅ Import complete: %d products, %d new categories, %d skipped rows",
						len(outcome.Products), len(outcome.NewCategories), len(outcome.Skipped))
					for _, skipped := range outcome.Skipped {
						log.Printf("  - line %d skipped: %s", skipped.Number, skipped.Reason)
					}
					return nil
				},
			},
			{
				Name:  "template",
				Usage: "Print the CSV import template to stdout",
				Action: func(ctx context.Context, c *cli.Command) error {
					fmt.Print(services.NewImportService().Template())
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("✅ Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
