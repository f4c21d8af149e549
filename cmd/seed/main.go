package main

import (
	"context"

	"provider-directory/config"
	"provider-directory/internal/infrastructure/database"
	"provider-directory/internal/seeder"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	doctors := pflag.Int("doctors", 10000, "number of doctors to generate")
	practices := pflag.Int("practices", 1000, "number of practices to generate")
	batchSize := pflag.Int("batch-size", 1000, "insert batch size")
	truncate := pflag.Bool("truncate", false, "clear existing data before seeding")
	seed := pflag.Int64("seed", 0, "random seed (0 uses the current time)")
	pflag.Parse()

	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	s := seeder.New(db, logrus.StandardLogger(), seeder.Options{
		Doctors:   *doctors,
		Practices: *practices,
		BatchSize: *batchSize,
		Truncate:  *truncate,
		Seed:      *seed,
	})

	if err := s.Run(context.Background()); err != nil {
		logrus.Fatalf("Seeding failed: %v", err)
	}
}
