package infrastructures

import (
	"os"

	"github.com/dkuaegis/aegis-adminpage/internal/app/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase opens the gateway-local store used for the operator action log.
func NewDatabase() *gorm.DB {
	db, err := gorm.Open(postgres.Open(os.Getenv("DATABASE_URL")), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&models.ActionLog{}); err != nil {
		logrus.Fatalf("failed to migrate action log schema: %v", err)
	}

	return db
}
