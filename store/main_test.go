package store

import (
	"testing"

	"gorm.io/gorm"

	"pulse/testutil"
)

func testOpen(t *testing.T, name string) *gorm.DB {
	t.Helper()
	return testutil.OpenTestDB(t, name)
}
