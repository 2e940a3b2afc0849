// Seeds the permission topics and the content categories. Existing documents
// in both collections are dropped first, so running it twice is safe.
package main

import (
	"context"
	"time"

	"github.com/disruptive-studio/content-platform/internal/core/domain"
	"github.com/disruptive-studio/content-platform/internal/infrastructure/db/mongo"
	"github.com/disruptive-studio/content-platform/internal/pkg/config"
	"github.com/disruptive-studio/content-platform/pkg/logger"
)

var topics = []domain.Topic{
	{Name: "Image", Permission: domain.Permission{Image: true}},
	{Name: "Video", Permission: domain.Permission{Video: true}},
	{Name: "Text", Permission: domain.Permission{Text: true}},
}

var categories = []domain.Category{
	{Name: "Photography", Kind: domain.KindImage},
	{Name: "Documentary", Kind: domain.KindVideo},
	{Name: "Article", Kind: domain.KindText},
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	for _, coll := range []string{domain.TopicSchema.Collection, domain.CategorySchema.Collection} {
		if err := db.Collection(coll).Drop(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", coll).Msg("drop failed")
		}
	}

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	topicRepo := mongo.NewRepository[domain.Topic](db, domain.TopicSchema, log)
	for _, t := range topics {
		if _, err := topicRepo.Create(ctx, &t); err != nil {
			log.Fatal().Err(err).Str("topic", t.Name).Msg("seed topic failed")
		}
		log.Info().Str("topic", t.Name).Msg("seeded")
	}

	categoryRepo := mongo.NewRepository[domain.Category](db, domain.CategorySchema, log)
	for _, cat := range categories {
		if _, err := categoryRepo.Create(ctx, &cat); err != nil {
			log.Fatal().Err(err).Str("category", cat.Name).Msg("seed category failed")
		}
		log.Info().Str("category", cat.Name).Msg("seeded")
	}

	log.Info().Msg("seed complete")
}
