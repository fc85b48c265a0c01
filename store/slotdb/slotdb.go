// Package slotdb persists the shop's named snapshot slots in a single
// database table. Each slot is one row holding the whole collection as a
// JSON blob; every save replaces the row, so the last writer wins.
package slotdb

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Slot struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

type DB struct {
	db *gorm.DB
}

// New migrates the slots table and wraps the connection.
func New(db *gorm.DB) (*DB, error) {
	if err := db.AutoMigrate(&Slot{}); err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

// Load returns the slot's blob, or nil when the slot was never written.
func (d *DB) Load(key string) ([]byte, error) {
	var slot Slot
	if err := d.db.First(&slot, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return slot.Value, nil
}

// Save upserts the slot with the new blob.
func (d *DB) Save(key string, data []byte) error {
	slot := Slot{Key: key, Value: data, UpdatedAt: time.Now()}
	return d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&slot).Error
}
