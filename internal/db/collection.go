package db

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	CollectionUsers   = "Users"
	CollectionWeight  = "Weight"
	CollectionFood    = "Food"
	CollectionWorkout = "Workout"
)

const insertBatchSize = 200

// Record is a row of a collection. RowKey covers every column except the
// storage id and is the identity used for de-duplication.
type Record interface {
	TableName() string
	RowKey() string
}

// Collection is one named table of uniformly shaped rows. Rows come back in
// insertion order.
type Collection[T Record] struct {
	database *gorm.DB
	name     string
}

func NewCollection[T Record](database *gorm.DB, name string) *Collection[T] {
	return &Collection[T]{database: database, name: name}
}

func (collection *Collection[T]) Name() string {
	return collection.name
}

// Load returns the whole collection or the read error.
func (collection *Collection[T]) Load() ([]T, error) {
	return loadRows[T](collection.database)
}

// ReadAll returns the whole collection, or an empty one when the table is
// missing or unreadable.
func (collection *Collection[T]) ReadAll() []T {
	rows, err := collection.Load()
	if err != nil {
		return []T{}
	}
	return rows
}

func (collection *Collection[T]) ReadOwnedBy(username string) []T {
	rows := make([]T, 0)
	if err := collection.database.Where("username = ?", username).Order("id ASC").Find(&rows).Error; err != nil {
		return []T{}
	}
	return rows
}

// Append merges rows into the collection and removes exact duplicates across
// the combined set, keeping first occurrences. It reports how many of rows
// were actually stored.
func (collection *Collection[T]) Append(rows []T) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	inserted := 0
	err := collection.database.Transaction(func(tx *gorm.DB) error {
		existing, err := loadRows[T](tx)
		if err != nil {
			return fmt.Errorf("read %s: %w", collection.name, err)
		}

		seen := make(map[string]struct{}, len(existing)+len(rows))
		duplicates := make([]T, 0)
		for _, row := range existing {
			key := row.RowKey()
			if _, ok := seen[key]; ok {
				duplicates = append(duplicates, row)
				continue
			}
			seen[key] = struct{}{}
		}
		if len(duplicates) > 0 {
			if err := tx.Delete(&duplicates).Error; err != nil {
				return fmt.Errorf("drop duplicate %s rows: %w", collection.name, err)
			}
		}

		fresh := make([]T, 0, len(rows))
		for _, row := range rows {
			key := row.RowKey()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			fresh = append(fresh, row)
		}
		if len(fresh) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(&fresh, insertBatchSize).Error; err != nil {
			return fmt.Errorf("insert %s rows: %w", collection.name, err)
		}
		inserted = len(fresh)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// Overwrite replaces the collection contents with rows, in order.
func (collection *Collection[T]) Overwrite(rows []T) error {
	return collection.database.Transaction(func(tx *gorm.DB) error {
		return collection.overwrite(tx, rows)
	})
}

// Rewrite reads the collection, lets mutate build the replacement table and
// overwrites the collection with it, all in one transaction. A failed read
// leaves the stored rows untouched.
func (collection *Collection[T]) Rewrite(mutate func(rows []T) []T) error {
	return collection.database.Transaction(func(tx *gorm.DB) error {
		rows, err := loadRows[T](tx)
		if err != nil {
			return fmt.Errorf("read %s: %w", collection.name, err)
		}
		return collection.overwrite(tx, mutate(rows))
	})
}

func (collection *Collection[T]) overwrite(tx *gorm.DB, rows []T) error {
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(new(T)).Error; err != nil {
		return fmt.Errorf("clear %s: %w", collection.name, err)
	}
	if len(rows) == 0 {
		return nil
	}
	if err := tx.CreateInBatches(&rows, insertBatchSize).Error; err != nil {
		return fmt.Errorf("write %s: %w", collection.name, err)
	}
	return nil
}

func loadRows[T Record](database *gorm.DB) ([]T, error) {
	rows := make([]T, 0)
	if err := database.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
