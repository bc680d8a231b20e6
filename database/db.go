package database

import (
	"log"

	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// Open (re)initializes the global connection against the given sqlite
// path and runs migrations. An empty path falls back to the configured
// default. Any previously open connection is closed first.
func Open(path string) error {
	if path == "" {
		path = viper.GetString("database_path")
	}
	if path == "" {
		path = "bramble.db"
	}

	CloseDB()

	gormDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}

	if err := gormDB.AutoMigrate(&User{}, &Post{}, &Comment{}); err != nil {
		return err
	}

	db = gormDB
	return nil
}

func GetDB() *gorm.DB {
	if db == nil {
		if err := Open(""); err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
	}
	return db
}

func CloseDB() {
	if db == nil {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Failed to get underlying database handle: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
	db = nil
}
