package storage

import (
	"sync"
	"time"

	"github.com/reality-check/api-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KV is the raw byte-level store underneath Store. Reads report presence
// separately from failure so a missing key is never an error.
type KV interface {
	Read(key string) ([]byte, bool, error)
	Write(key string, value []byte) error
}

type GormKV struct {
	DB *gorm.DB
}

func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{DB: db}
}

func (g *GormKV) Read(key string) ([]byte, bool, error) {
	var blob models.Blob
	err := g.DB.Where("key = ?", key).First(&blob).Error
	if err == gorm.ErrRecordNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return blob.Value, true, nil
}

func (g *GormKV) Write(key string, value []byte) error {
	blob := models.Blob{Key: key, Value: value, UpdatedAt: time.Now()}
	return g.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
}

// MemoryKV keeps blobs in a map. Used by tests.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Read(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *MemoryKV) Write(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
