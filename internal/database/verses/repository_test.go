package verses

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sacredsteps/sacredsteps/internal/database/storetest"
	"github.com/sacredsteps/sacredsteps/internal/entities"
	"github.com/sacredsteps/sacredsteps/internal/services"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := filepath.Join(t.TempDir(), "verses.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Verse{})
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}

	return NewRepository(db), cleanup
}

func TestRepository_Contract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) services.VerseStore {
		repo, cleanup := setupTestDB(t)
		t.Cleanup(cleanup)
		return repo
	})
}

func TestRepository_PersistsAcrossConnections(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "verses.db")

	open := func() *gorm.DB {
		db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		require.NoError(t, err)
		require.NoError(t, db.AutoMigrate(&entities.Verse{}))
		return db
	}

	first := open()
	v := entities.NewVerse("Genesis", 1, 1, "In the beginning...", 1)
	require.NoError(t, NewRepository(first).Create(v))
	sqlDB, _ := first.DB()
	require.NoError(t, sqlDB.Close())

	second := open()
	defer func() {
		sqlDB, _ := second.DB()
		sqlDB.Close()
	}()

	got, err := NewRepository(second).GetByID(v.ID)
	require.NoError(t, err)
	assert.Equal(t, "In the beginning...", got.Text)
}

func TestRepository_GetAll_LargeBatch(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	var batch []entities.Verse
	for chapter := 3; chapter >= 1; chapter-- {
		for verse := 250; verse >= 1; verse-- {
			batch = append(batch, *entities.NewVerse("Psalms", chapter, verse, "", 19))
		}
	}
	require.NoError(t, repo.CreateBatch(batch))

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 750)
	assert.Equal(t, 1, all[0].Chapter)
	assert.Equal(t, 1, all[0].VerseNumber)
	assert.Equal(t, 3, all[749].Chapter)
	assert.Equal(t, 250, all[749].VerseNumber)
}
