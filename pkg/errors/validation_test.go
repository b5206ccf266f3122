package errors

import (
	"strings"
	"testing"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"simple", "pane_1", false},
		{"unicode", "fenêtre", false},
		{"empty", "", true},
		{"newline", "pane\n1", true},
		{"null byte", "pane\x00", true},
		{"max length", strings.Repeat("a", 256), false},
		{"too long", strings.Repeat("a", 257), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateID(%q) code = %v, want %v", tt.id, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}
