package database

import (
	"log"
	"os"
	"time"

	"projectdesk/internal/domain/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection, runs migrations and seeds the
// default admin. It retries for a while because the database container is
// usually still starting when the API comes up.
func Connect() *gorm.DB {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost user=projectdesk password=projectdesk dbname=projectdesk port=5432 sslmode=disable"
	}

	var db *gorm.DB
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("[infra][database] connecting to postgres (attempt %d/%d)", i, maxAttempts)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Printf("[infra][database] connected")
			break
		}

		log.Printf("[infra][database] connection failed: %v", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatalf("[infra][database] failed to connect after %d attempts: %v", maxAttempts, err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.APIToken{},
		&entities.Project{},
		&entities.WorkflowTransition{},
		&entities.BudgetItem{},
		&entities.ProjectPlan{},
		&entities.AuditLog{},
	); err != nil {
		log.Fatalf("[infra][database] migration failed: %v", err)
	}

	seedDefaultAdmin(db)

	return db
}

// seedDefaultAdmin guarantees at least one account able to manage users.
// Credentials come from ADMIN_USERNAME / ADMIN_PASSWORD.
func seedDefaultAdmin(db *gorm.DB) {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := db.Model(&entities.User{}).
		Where("role = ?", entities.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Printf("[infra][database] failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[infra][database] failed to hash default admin password: %v", err)
		return
	}

	admin := entities.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         entities.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[infra][database] failed to seed default admin: %v", err)
		return
	}

	log.Printf("[infra][database] seeded default admin %q", username)
}
