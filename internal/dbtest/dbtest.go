// Package dbtest provides throwaway migrated databases for tests.
package dbtest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/dance-school/internal/db"
)

// New returns a migrated in-memory sqlite database private to t.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	url := fmt.Sprintf("sqlite://file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := db.Open(url)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gdb) })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return gdb
}
