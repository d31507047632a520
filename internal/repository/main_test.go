package repository

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"testing"

	"finbay/internal/database"
	"finbay/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

var seq uint64

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")

	var err error
	testDB, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Printf("Repository tests skipped: sqlite unavailable: %v", err)
		os.Exit(0)
	}
	if sqlDB, dbErr := testDB.DB(); dbErr == nil {
		// Shared in-memory sqlite is dropped when the last connection closes
		sqlDB.SetMaxOpenConns(1)
	}

	if err := testDB.AutoMigrate(database.AllModels()...); err != nil {
		log.Printf("Repository tests skipped: migration failed: %v", err)
		os.Exit(0)
	}

	os.Exit(m.Run())
}

func nextSeq() uint64 {
	return atomic.AddUint64(&seq, 1)
}

func createTestUser(t *testing.T) *models.User {
	t.Helper()
	n := nextSeq()
	u := &models.User{
		Username: fmt.Sprintf("user_%d", n),
		Email:    fmt.Sprintf("user_%d@example.com", n),
		Password: "hashed-password",
	}
	if err := testDB.Create(u).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return u
}

func createTestItem(t *testing.T, ownerID uint, price float64) *models.Item {
	t.Helper()
	n := nextSeq()
	item := &models.Item{
		UserID:      ownerID,
		Name:        fmt.Sprintf("Neon Tetra %d", n),
		Description: "A lively schooling fish for community tanks",
		Category:    models.CategoryFish,
		BasePrice:   price,
	}
	if err := testDB.Create(item).Error; err != nil {
		t.Fatalf("create test item: %v", err)
	}
	return item
}
