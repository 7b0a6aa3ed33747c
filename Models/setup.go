package Models

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func ConnectDataBase() {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "rdc.db"
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})

	if err != nil {
		log.Fatal("connection error:", err)
	}

	Migrate()

	SeedAdmin(os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASS"))
}

// Migrate ensures every managed table exists with its full column set.
// Runs once per boot; calling it again is a no-op.
func Migrate() {
	for table, columns := range TableSpecs {
		if err := EnsureTable(table, columns); err != nil {
			log.Fatalf("failed to migrate table %s: %v", table, err)
		}
	}
}
