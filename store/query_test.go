package store

import (
	"testing"
)

func TestQuery_IdentityIsStatementTextOnly(t *testing.T) {
	a := NewQuery("SELECT * FROM users WHERE age > ?", 40)
	b := NewQuery("SELECT * FROM users WHERE age > ?", 65)

	if a.Identity() != a.Statement {
		t.Errorf("expected identity to equal statement text, got %q", a.Identity())
	}

	// Bind values are not part of the identity. This collision is the
	// documented behavior of the cache key, not an accident.
	if a.Identity() != b.Identity() {
		t.Errorf("expected identical identities for same statement text, got %q vs %q", a.Identity(), b.Identity())
	}
}

func TestQuery_Fingerprint(t *testing.T) {
	q := NewQuery("SELECT * FROM users")

	if q.Fingerprint() != q.Fingerprint() {
		t.Error("expected fingerprint to be stable across calls")
	}

	other := NewQuery("SELECT * FROM orders")
	if q.Fingerprint() == other.Fingerprint() {
		t.Error("expected different statements to produce different fingerprints")
	}
}

func TestNewQuery_PreservesArgOrder(t *testing.T) {
	q := NewQuery("UPDATE users SET email = ? WHERE id = ?", "new@example.com", 1)

	if len(q.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(q.Args))
	}
	if q.Args[0] != "new@example.com" || q.Args[1] != 1 {
		t.Errorf("args out of order: %v", q.Args)
	}
}

func TestResultSet_Empty(t *testing.T) {
	empty := ResultSet{Columns: []string{"id"}}
	if !empty.Empty() {
		t.Error("expected result set with no rows to be empty")
	}

	full := ResultSet{Columns: []string{"id"}, Rows: []Row{{int64(1)}}}
	if full.Empty() {
		t.Error("expected result set with rows to be non-empty")
	}
}
