package main

import (
	"context"
	"flag"
	"log"

	"github.com/EmpoweredVote/Review-Backend/internal/auth"
	"github.com/EmpoweredVote/Review-Backend/internal/config"
	"github.com/EmpoweredVote/Review-Backend/internal/db"
	"github.com/EmpoweredVote/Review-Backend/internal/logger"
	"github.com/EmpoweredVote/Review-Backend/internal/reviews"
	"github.com/EmpoweredVote/Review-Backend/internal/seeds"
)

func main() {
	file := flag.String("file", "internal/seeds/data/fixtures.yaml", "YAML fixture file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger.Init(cfg.IsDevelopment(), "")

	conn, err := db.Connect(db.Options{Driver: cfg.DBDriver, DSN: cfg.DSN, PoolSize: 1})
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close(conn)

	if err := auth.Init(conn); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := reviews.Init(conn); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	fixtures, err := seeds.LoadFile(*file)
	if err != nil {
		log.Fatalf("fixtures: %v", err)
	}

	seeder := seeds.NewSeeder(conn, auth.NewBcryptHasher(cfg.BcryptCost))
	if err := seeder.SeedAll(context.Background(), fixtures); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}
