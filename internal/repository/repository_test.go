package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/maracujarp/rulebook-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Section{}, &models.Rule{}, &models.ActivityLog{}))
	return db
}

func seedSection(t *testing.T, db *gorm.DB, id, title string, orderIndex int) models.Section {
	t.Helper()

	section := models.Section{ID: id, Title: title, Icon: "Shield", OrderIndex: orderIndex}
	require.NoError(t, db.Create(&section).Error)
	return section
}

func seedRule(t *testing.T, db *gorm.DB, id, sectionID, title string, orderIndex int) models.Rule {
	t.Helper()

	rule := models.Rule{
		ID:         id,
		SectionID:  sectionID,
		Title:      title,
		Content:    "contenuto della regola",
		OrderIndex: orderIndex,
	}
	require.NoError(t, db.Create(&rule).Error)
	return rule
}
