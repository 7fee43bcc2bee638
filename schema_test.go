package variant

import (
	"errors"
	"testing"
)

func TestNewSchema(t *testing.T) {
	tests := []struct {
		name         string
		alternatives []string
		wantErr      bool
		wantIs       error
	}{
		{"two alternatives", []string{"Some", "None"}, false, nil},
		{"single alternative", []string{"Only"}, false, nil},
		{"no alternatives", nil, true, nil},
		{"empty name", []string{"Ok", ""}, true, nil},
		{"duplicate name", []string{"Ok", "Ok"}, true, nil},
		{"reserved catch-all name", []string{"Ok", CatchAll}, true, ErrReservedName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSchema(tt.alternatives...)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewSchema(%v) succeeded, want error", tt.alternatives)
				}
				if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
					t.Errorf("NewSchema() error = %v, want errors.Is %v", err, tt.wantIs)
				}
				return
			}

			if err != nil {
				t.Fatalf("NewSchema() error = %v, want nil", err)
			}
			if s.Len() != len(tt.alternatives) {
				t.Errorf("Len() = %d, want %d", s.Len(), len(tt.alternatives))
			}
		})
	}
}

func TestSchema_Alternatives(t *testing.T) {
	s, err := NewSchema("Ok", "Err", "Pending")
	if err != nil {
		t.Fatalf("NewSchema() error = %v", err)
	}

	got := s.Alternatives()
	want := []string{"Ok", "Err", "Pending"}
	if len(got) != len(want) {
		t.Fatalf("Alternatives() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Alternatives()[%d] = %q, want %q (declaration order)", i, got[i], want[i])
		}
	}

	// Mutating the returned slice must not affect the schema.
	got[0] = "mutated"
	if s.Alternatives()[0] != "Ok" {
		t.Error("Alternatives() must return a defensive copy")
	}
}

func TestSchema_Declares(t *testing.T) {
	s, err := NewSchema("Some", "None")
	if err != nil {
		t.Fatalf("NewSchema() error = %v", err)
	}

	tests := []struct {
		name string
		want bool
	}{
		{"Some", true},
		{"None", true},
		{"some", false},
		{"Other", false},
		{CatchAll, false},
		{"", false},
	}

	for _, tt := range tests {
		if got := s.Declares(tt.name); got != tt.want {
			t.Errorf("Declares(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
