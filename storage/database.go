package storage

import (
	"log"
	"os"

	"github.com/Danieliragi/johnserviceMotel-sub002/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func connectToDB() *gorm.DB {
	// Only load .env in development (when RENDER env var is not set)
	if os.Getenv("RENDER") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Println("Warning: Could not load .env file (this is normal in production)")
		}
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		// Data endpoints answer 503 until the store is configured;
		// the server itself still comes up.
		log.Println("Warning: DB_CONNECTION_STRING is not set, starting without a database")
		return nil
	}

	db, dbError := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if dbError != nil {
		log.Panic("error connection to db: " + dbError.Error())
	}

	DB = db
	return db
}

func performMigrations(db *gorm.DB) {
	db.AutoMigrate(
		&models.User{},
		&models.Chambre{},
		&models.Reservation{},
		&models.Review{},
		&models.Service{},
		&models.Invoice{},
		&models.Payment{},
		&models.EmailLog{},
		&models.AuditLog{},
	)
}

func InitializeDB() *gorm.DB {
	db := connectToDB()
	if db != nil {
		performMigrations(db)
	}
	return db
}

// Available reports whether the reservation store was configured at boot.
func Available() bool {
	return DB != nil
}
