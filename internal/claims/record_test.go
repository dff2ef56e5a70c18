package claims_test

import (
	"errors"
	"testing"

	"github.com/wrenchline/tread/internal/claims"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		absent bool
	}{
		{"rfc3339", "2024-01-05T10:30:00Z", false},
		{"rfc3339 no zone", "2024-01-05T10:30:00", false},
		{"date only", "2024-01-05", false},
		{"empty", "", true},
		{"whitespace", "  ", true},
		{"null literal", "null", true},
		{"NULL literal", "NULL", true},
		{"garbage", "not-a-date", true},
		{"partial", "2024-13-45", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := claims.ParseDate(tt.input)
			if tt.absent && got != nil {
				t.Errorf("ParseDate(%q) = %v, want nil", tt.input, got)
			}
			if !tt.absent && got == nil {
				t.Errorf("ParseDate(%q) = nil, want value", tt.input)
			}
		})
	}
}

func validRecord() claims.ClaimRecord {
	return claims.ClaimRecord{
		ClaimNumber:  "CLM-1001",
		AgreementID:  "550e8400-e29b-41d4-a716-446655440000",
		DealerID:     "660e8400-e29b-41d4-a716-446655440000",
		VIN:          "1HGBH41JXMN109186",
		ReportedDate: "2024-01-01",
		ClosedDate:   "2024-01-05",
		Correction:   "replaced compressor",
		PaidAmount:   125000,
	}
}

func TestNormalize(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		cmd, err := validRecord().Normalize()
		if err != nil {
			t.Fatalf("Normalize() error = %v", err)
		}

		if cmd.ClaimNumber != "CLM-1001" {
			t.Errorf("claim_number = %q", cmd.ClaimNumber)
		}
		if cmd.ReportedDate == nil || cmd.ClosedDate == nil {
			t.Error("dates should be populated")
		}
		if cmd.Correction == nil || *cmd.Correction != "replaced compressor" {
			t.Errorf("correction = %v", cmd.Correction)
		}
	})

	t.Run("malformed dates become absent", func(t *testing.T) {
		r := validRecord()
		r.ReportedDate = "01/05/2024"
		r.ClosedDate = "null"

		cmd, err := r.Normalize()
		if err != nil {
			t.Fatalf("Normalize() error = %v", err)
		}
		if cmd.ReportedDate != nil {
			t.Errorf("reported = %v, want nil", cmd.ReportedDate)
		}
		if cmd.ClosedDate != nil {
			t.Errorf("closed = %v, want nil", cmd.ClosedDate)
		}
	})

	t.Run("empty correction becomes nil", func(t *testing.T) {
		r := validRecord()
		r.Correction = "   "

		cmd, err := r.Normalize()
		if err != nil {
			t.Fatalf("Normalize() error = %v", err)
		}
		if cmd.Correction != nil {
			t.Errorf("correction = %v, want nil", cmd.Correction)
		}
	})

	t.Run("missing claim number", func(t *testing.T) {
		r := validRecord()
		r.ClaimNumber = " "

		if _, err := r.Normalize(); !errors.Is(err, claims.ErrInvalidRecord) {
			t.Errorf("error = %v, want ErrInvalidRecord", err)
		}
	})

	t.Run("invalid agreement id", func(t *testing.T) {
		r := validRecord()
		r.AgreementID = "not-a-uuid"

		if _, err := r.Normalize(); !errors.Is(err, claims.ErrInvalidRecord) {
			t.Errorf("error = %v, want ErrInvalidRecord", err)
		}
	})

	t.Run("negative paid amount", func(t *testing.T) {
		r := validRecord()
		r.PaidAmount = -1

		if _, err := r.Normalize(); !errors.Is(err, claims.ErrInvalidRecord) {
			t.Errorf("error = %v, want ErrInvalidRecord", err)
		}
	})
}
