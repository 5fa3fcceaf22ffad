package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/900mahdi/mohasib3/internal/models"

	"gorm.io/gorm"
)

// Logical keys, kept identical to what the old front end used in localStorage.
const (
	KeyFinancialData = "haseelat_data"
	KeyPassword      = "haseelat_pass"
)

// Store is the persistence gateway: two independent logical entries, each an
// unconditional overwrite. There is no transactional guarantee across them.
type Store interface {
	LoadRecord() (models.FinancialRecord, bool, error)
	SaveRecord(rec models.FinancialRecord) error
	LoadCredential() (string, bool, error)
	SaveCredential(secret string) error
}

// GormStore stores both entries as rows of the settings table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) get(key string) (string, bool, error) {
	var setting models.Setting
	err := s.db.First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return setting.Value, true, nil
}

func (s *GormStore) put(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return s.db.Save(&setting).Error
}

func (s *GormStore) LoadRecord() (models.FinancialRecord, bool, error) {
	raw, found, err := s.get(KeyFinancialData)
	if err != nil || !found {
		return models.FinancialRecord{}, false, err
	}
	var rec models.FinancialRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return models.FinancialRecord{}, false, fmt.Errorf("decode financial record: %w", err)
	}
	return rec, true, nil
}

func (s *GormStore) SaveRecord(rec models.FinancialRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.put(KeyFinancialData, string(raw))
}

func (s *GormStore) LoadCredential() (string, bool, error) {
	return s.get(KeyPassword)
}

func (s *GormStore) SaveCredential(secret string) error {
	return s.put(KeyPassword, secret)
}
