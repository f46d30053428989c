package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pc-builder-backend/internal/config"
	"pc-builder-backend/internal/database"
	"pc-builder-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PartData directly matches the catalog schema
type PartData struct {
	Kind        string                 `yaml:"kind"`
	Brand       string                 `yaml:"brand"`
	Name        string                 `yaml:"name"`
	ModelNumber string                 `yaml:"model_number,omitempty"`
	PriceCents  int64                  `yaml:"price_cents"`
	Wattage     int                    `yaml:"wattage"`
	Specs       map[string]interface{} `yaml:"specs,omitempty"`
}

type partsFile struct {
	Parts []PartData `yaml:"parts"`
}

func main() {
	log.Println("🚀 Loading catalog parts from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	created, skipped, err := loadCatalogFromYAMLFiles(db, "scripts/data")
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	log.Printf("✅ Catalog loaded: %d parts created, %d already present", created, skipped)
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress GORM logs including "record not found" during seeding
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadCatalogFromYAMLFiles(db *gorm.DB, dataDir string) (created, skipped int, err error) {
	parts, err := loadParts(dataDir)
	if err != nil {
		return 0, 0, err
	}

	for _, partData := range parts {
		wasCreated, err := createPart(db, partData)
		if err != nil {
			return created, skipped, fmt.Errorf("part %s %s: %w", partData.Brand, partData.Name, err)
		}
		if wasCreated {
			created++
		} else {
			skipped++
		}
	}
	return created, skipped, nil
}

func loadParts(dataDir string) ([]PartData, error) {
	var all []PartData
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file partsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		all = append(all, file.Parts...)
		return nil
	})
	return all, err
}

func createPart(db *gorm.DB, partData PartData) (bool, error) {
	kind, ok := models.ParsePartKind(partData.Kind)
	if !ok {
		return false, fmt.Errorf("unknown part kind %q", partData.Kind)
	}

	var existing models.Part
	err := db.Where("kind = ? AND brand = ? AND name = ?", kind, partData.Brand, partData.Name).
		First(&existing).Error
	if err == nil {
		return false, nil // already present
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query part: %w", err)
	}

	specsJSON, _ := json.Marshal(partData.Specs)

	part := models.Part{
		Kind:        kind,
		Brand:       partData.Brand,
		Name:        partData.Name,
		ModelNumber: partData.ModelNumber,
		PriceCents:  partData.PriceCents,
		Wattage:     partData.Wattage,
		Specs:       specsJSON,
	}
	if err := db.Create(&part).Error; err != nil {
		return false, fmt.Errorf("failed to create part: %w", err)
	}
	return true, nil
}
