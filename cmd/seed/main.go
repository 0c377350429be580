package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"mobile-order-be/internal/entity"
	"mobile-order-be/internal/repository/specification"
	"mobile-order-be/internal/repository/unitofwork"
	"mobile-order-be/pkg/catalog"
	"mobile-order-be/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	repo := uow.MenuItemRepository()

	created, updated := 0, 0
	for _, item := range catalog.DefaultMenu() {
		existing, err := repo.FindOne(ctx, specification.BySKU{SKU: item.SKU})
		if err != nil {
			log.Fatalf("Error: Failed to look up %s: %v", item.SKU, err)
		}

		if existing == nil {
			if err := repo.Create(ctx, toEntity(item)); err != nil {
				log.Fatalf("Error: Failed to create %s: %v", item.SKU, err)
			}
			created++
			continue
		}

		// Refresh catalog attributes but keep the id and embedding.
		e := toEntity(item)
		e.Id = existing.Id
		e.Embedding = existing.Embedding
		e.CreatedAt = existing.CreatedAt
		if err := repo.Update(ctx, e); err != nil {
			log.Fatalf("Error: Failed to update %s: %v", item.SKU, err)
		}
		updated++
	}

	color.Green("✅ Success: Menu seeded (%d created, %d updated). Run the server to backfill embeddings.", created, updated)
}

func toEntity(item catalog.Item) *entity.MenuItem {
	return &entity.MenuItem{
		Id:           uuid.New(),
		SKU:          item.SKU,
		Name:         item.Name,
		Category:     item.Category,
		BasePrice:    item.BasePrice,
		Description:  item.Description,
		IsNew:        item.IsNew,
		IsSeasonal:   item.IsSeasonal,
		Calories:     item.Calories,
		Temperatures: item.Temperatures,
		Sizes:        item.Sizes,
		Tags:         item.Tags,
		Constraints:  item.Constraints,
		CreatedAt:    time.Now(),
	}
}
