package table

import "testing"

func TestRowRoundTrip(t *testing.T) {
	row, err := NewRow(7, "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("NewRow: %v", err)
	}

	buf := make([]byte, RowSize)
	row.Serialize(buf)

	got := DeserializeRow(buf)
	if got != row {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, row)
	}
}

func TestRowMaxLengths(t *testing.T) {
	username := make([]byte, ColumnUsernameSize)
	for i := range username {
		username[i] = 'a'
	}
	email := make([]byte, ColumnEmailSize)
	for i := range email {
		email[i] = 'a'
	}

	row, err := NewRow(1, string(username), string(email))
	if err != nil {
		t.Fatalf("NewRow at max lengths: %v", err)
	}

	buf := make([]byte, RowSize)
	row.Serialize(buf)
	got := DeserializeRow(buf)
	if got.Username != string(username) || got.Email != string(email) {
		t.Errorf("max-length round trip mismatch")
	}
}

func TestNewRowStringTooLong(t *testing.T) {
	longUsername := make([]byte, ColumnUsernameSize+1)
	for i := range longUsername {
		longUsername[i] = 'a'
	}

	if _, err := NewRow(1, string(longUsername), "short@example.com"); err != ErrStringTooLong {
		t.Errorf("NewRow with oversized username: err = %v, want ErrStringTooLong", err)
	}

	longEmail := make([]byte, ColumnEmailSize+1)
	for i := range longEmail {
		longEmail[i] = 'a'
	}
	if _, err := NewRow(1, "bob", string(longEmail)); err != ErrStringTooLong {
		t.Errorf("NewRow with oversized email: err = %v, want ErrStringTooLong", err)
	}
}
