package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/meur/mctiers/internal/config"
	"github.com/meur/mctiers/internal/models"
	"github.com/meur/mctiers/internal/storage"
)

type seedFile struct {
	GameModes []string              `json:"game_modes"`
	Players   []models.PlayerCreate `json:"players"`
}

func main() {
	seedsPath := flag.String("seeds", "./seeds/seed.json", "Seed file path")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	if err := store.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	data, err := os.ReadFile(*seedsPath)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	var seeds seedFile
	if err := json.Unmarshal(data, &seeds); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	for _, name := range seeds.GameModes {
		if _, err := store.CreateGameMode(ctx, name); err != nil {
			log.Printf("Warning: failed to seed game mode %q: %v", name, err)
		} else {
			log.Printf("✓ Seeded game mode %q", name)
		}
	}

	for i := range seeds.Players {
		p := seeds.Players[i]
		if _, err := store.CreatePlayer(ctx, &p); err != nil {
			log.Printf("Warning: failed to seed player %q: %v", p.Username, err)
		} else {
			log.Printf("✓ Seeded player %q", p.Username)
		}
	}

	log.Println("🌱 Seeding complete!")
}
