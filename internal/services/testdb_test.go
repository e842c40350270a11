package services

import (
	"testing"

	"github.com/rosterhq/roster-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// matches production: no FK constraint so value rows can outlive
		// their attribute definition
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.AttributeDefinition{},
		&models.UserRecord{},
		&models.UserAttributeValue{},
		&models.AdminSession{},
		&models.SystemLog{},
	))
	return db
}
