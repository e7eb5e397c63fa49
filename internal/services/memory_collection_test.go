package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/terraincognita07/fitlog/internal/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ownedRecord interface {
	RowKey() string
	Owner() string
}

// memoryCollection mirrors db.Collection semantics in memory and can be told
// to fail reads or writes.
type memoryCollection[T ownedRecord] struct {
	rows       []T
	appendErr  error
	rewriteErr error
	appends    int
}

func (collection *memoryCollection[T]) ReadOwnedBy(username string) []T {
	result := make([]T, 0)
	for _, row := range collection.rows {
		if row.Owner() == username {
			result = append(result, row)
		}
	}
	return result
}

func (collection *memoryCollection[T]) Append(rows []T) (int, error) {
	collection.appends++
	if collection.appendErr != nil {
		return 0, collection.appendErr
	}

	seen := make(map[string]struct{}, len(collection.rows)+len(rows))
	kept := make([]T, 0, len(collection.rows)+len(rows))
	for _, row := range collection.rows {
		if _, ok := seen[row.RowKey()]; ok {
			continue
		}
		seen[row.RowKey()] = struct{}{}
		kept = append(kept, row)
	}

	inserted := 0
	for _, row := range rows {
		if _, ok := seen[row.RowKey()]; ok {
			continue
		}
		seen[row.RowKey()] = struct{}{}
		kept = append(kept, row)
		inserted++
	}
	collection.rows = kept
	return inserted, nil
}

func (collection *memoryCollection[T]) Rewrite(mutate func(rows []T) []T) error {
	if collection.rewriteErr != nil {
		return collection.rewriteErr
	}
	current := append([]T(nil), collection.rows...)
	collection.rows = mutate(current)
	return nil
}

func serviceTestDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func openServiceTestRepositories(t *testing.T) *db.Repositories {
	t.Helper()
	return db.NewRepositories(openServiceTestDatabase(t))
}

func openServiceTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "fitness.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("OpenSQLite() unexpected error: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(database); err != nil {
			t.Errorf("Close() unexpected error: %v", err)
		}
	})
	return database
}
