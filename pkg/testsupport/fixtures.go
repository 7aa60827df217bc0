// Package testsupport provides fixture helpers for tests that need a seeded
// SQLite store.
package testsupport

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"
)

// UserFixture is the canonical test row shape: the classic users table the
// middleware exercises in integration tests.
type UserFixture struct {
	bun.BaseModel `bun:"table:users"`

	ID    int64  `json:"id" bun:"id,pk"`
	Name  string `json:"name" bun:"name"`
	Email string `json:"email" bun:"email"`
	Age   int64  `json:"age" bun:"age"`
}

// DefaultUsers returns a small deterministic data set with ages on both
// sides of the 40 boundary the concurrent-fetch tests select on.
func DefaultUsers() []UserFixture {
	return []UserFixture{
		{ID: 1, Name: "Crawford Cartwright", Email: "crawford@example.com", Age: 34},
		{ID: 2, Name: "Dana Whitfield", Email: "dana@example.com", Age: 52},
		{ID: 3, Name: "Ines Okafor", Email: "ines@example.com", Age: 41},
		{ID: 4, Name: "Pavel Ostrov", Email: "pavel@example.com", Age: 28},
	}
}

// TempStorePath returns a SQLite locator under a test-scoped temp directory.
// The file does not exist yet; opening it creates the store.
func TempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "users.db")
}

// SeedUsers creates the users table at locator and inserts the given rows.
// Seeding goes through bun so the schema and data stay declarative.
func SeedUsers(t *testing.T, locator string, users []UserFixture) {
	t.Helper()

	sqldb, err := sql.Open("sqlite3", locator)
	if err != nil {
		t.Fatalf("failed to open store at %s: %v", locator, err)
	}
	defer sqldb.Close()

	db := bun.NewDB(sqldb, sqlitedialect.New())
	ctx := context.Background()

	if _, err := db.NewCreateTable().Model((*UserFixture)(nil)).IfNotExists().Exec(ctx); err != nil {
		t.Fatalf("failed to create users table: %v", err)
	}

	if len(users) == 0 {
		return
	}
	if _, err := db.NewInsert().Model(&users).Exec(ctx); err != nil {
		t.Fatalf("failed to seed users: %v", err)
	}
}

// SeededStore creates a temp store populated with DefaultUsers and returns
// its locator.
func SeededStore(t *testing.T) string {
	t.Helper()

	locator := TempStorePath(t)
	SeedUsers(t, locator, DefaultUsers())
	return locator
}

// LoadFixtureJSON loads JSON test data from a fixture file and unmarshals it.
// The path is relative to the test package directory.
func LoadFixtureJSON(t *testing.T, path string, dest any) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture from %s: %v", path, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		t.Fatalf("failed to unmarshal JSON fixture from %s: %v", path, err)
	}
}

// FixturePath constructs a path to a fixture file relative to the testdata
// directory.
func FixturePath(filename string) string {
	return filepath.Join("testdata", filename)
}
