package services

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pathwise-app/pathwise_client/model"
	"github.com/pathwise-app/pathwise_client/shared"
)

type SqliteService struct {
	context.DefaultService
	db *gorm.DB

	stateDir string
	database string
}

const SQLITE_SVC = "sqlite_svc"

// Id returns Service ID
func (ds SqliteService) Id() string {
	return SQLITE_SVC
}

// Db Access to raw SqliteService db
func (ds SqliteService) Db() *gorm.DB {
	return ds.db
}

// StateDir is the per-install directory holding the database and key file.
func (ds SqliteService) StateDir() string {
	return ds.stateDir
}

// Configure the service
func (ds *SqliteService) Configure(ctx *context.Context) error {
	ds.stateDir = os.Getenv("PATHWISE_STATE_DIR")
	if ds.stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		ds.stateDir = filepath.Join(home, ".pathwise")
	}
	ds.database = filepath.Join(ds.stateDir, "pathwise.db")

	return ds.DefaultService.Configure(ctx)
}

// Start the service and open connection to the database
// Migrate any tables that have changed since last runtime
func (ds *SqliteService) Start() (err error) {
	if err = os.MkdirAll(ds.stateDir, 0o700); err != nil {
		return err
	}

	ds.db, err = gorm.Open(sqlite.Open(ds.database), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return err
	}

	models := []interface{}{
		&model.Setting{},
		&model.GamificationRecord{},
	}

	err = ds.db.AutoMigrate(models...)
	if err != nil {
		log.WithError(err).Error("Failed to migrate local store")
		return err
	}

	return nil
}

func (ds *SqliteService) Shutdown() {
}

// ==================== SETTINGS KV ====================

// GetSetting returns the stored value or "" when the key is absent. It never
// fails on a missing key; the token manager relies on that.
func (ds *SqliteService) GetSetting(key string) (string, error) {
	var setting model.Setting
	err := ds.db.First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", ds.HandleError(err)
	}
	return setting.Value, nil
}

func (ds *SqliteService) SetSetting(key, value string) error {
	setting := model.Setting{Key: key, Value: value, UpdatedAt: time.Now()}
	return ds.HandleError(ds.db.Save(&setting).Error)
}

func (ds *SqliteService) DeleteSetting(keys ...string) error {
	return ds.HandleError(ds.db.Delete(&model.Setting{}, "key IN ?", keys).Error)
}

// ==================== GAMIFICATION RECORD ====================

// LoadRecord returns the single progression record, or nil when none has been
// persisted yet.
func (ds *SqliteService) LoadRecord() (*model.GamificationRecord, error) {
	var record model.GamificationRecord
	err := ds.db.First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, ds.HandleError(err)
	}
	return &record, nil
}

// SaveRecord rewrites the whole record. Single writer at a time; the engine
// serializes callers.
func (ds *SqliteService) SaveRecord(record *model.GamificationRecord) error {
	if record.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		record.ID = id.String()
		record.CreatedAt = time.Now()
	}
	record.UpdatedAt = time.Now()
	return ds.HandleError(ds.db.Save(record).Error)
}

func (ds *SqliteService) HandleError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.NewNotFoundError(err, "Record not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.NewConflictError(err, "Record already exists")
	default:
		return shared.NewInternalError(err, "Local store operation failed")
	}
}
