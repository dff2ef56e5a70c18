package formatting_test

import (
	"testing"

	"github.com/wrenchline/tread/pkg/formatting"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name      string
		n         int64
		precision int
		want      string
	}{
		{"zero", 0, 2, "0 B"},
		{"bytes", 512, 0, "512 B"},
		{"kilobytes", 2048, 0, "2 KB"},
		{"megabytes with precision", 1572864, 1, "1.5 MB"},
		{"gigabytes", 1073741824, 0, "1 GB"},
		{"negative precision clamped", 2048, -3, "2 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatting.FormatBytes(tt.n, tt.precision); got != tt.want {
				t.Errorf("FormatBytes(%d, %d) = %q, want %q", tt.n, tt.precision, got, tt.want)
			}
		})
	}
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"bare number", "1024", 1024, false},
		{"megabytes", "50MB", 52428800, false},
		{"spaced unit", "50 MB", 52428800, false},
		{"lowercase unit", "2kb", 2048, false},
		{"fractional", "1.5KB", 1536, false},
		{"unknown unit", "10QB", 0, true},
		{"garbage", "not a size", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatting.ParseBytes(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseBytes(%q) expected error, got %d", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBytes(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseBytes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
