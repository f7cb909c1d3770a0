package db

import "testing"

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in      string
		want    Dialect
		wantErr bool
	}{
		{"", SQLite, false},
		{"sqlite", SQLite, false},
		{" PGX ", Postgres, false},
		{"postgresql", Postgres, false},
		{"mysql", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDialect(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseDialect(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestPlaceholders(t *testing.T) {
	if got := SQLite.Placeholders(3); got != "?, ?, ?" {
		t.Errorf("sqlite = %q", got)
	}
	if got := Postgres.Placeholders(3); got != "$1, $2, $3" {
		t.Errorf("postgres = %q", got)
	}
	if got := Postgres.Placeholder(12); got != "$12" {
		t.Errorf("postgres #12 = %q", got)
	}
}

func TestOpenRejectsEmptyDSN(t *testing.T) {
	if _, err := Open(SQLite, " "); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
}
