package models

import "time"

// KVEntry backs the SQL implementation of the local state store.
type KVEntry struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName pins the table name used by the migrations.
func (KVEntry) TableName() string { return "kv_entries" }
