package fields

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ministryofjustice/laa-data-claims-event-service/internal/domain"
	"github.com/ministryofjustice/laa-data-claims-event-service/internal/validation"
)

func TestUFNDate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ufn     string
		wantErr bool
	}{
		{name: "valid date prefix", ufn: "010425/123", wantErr: false},
		{name: "valid leap day", ufn: "290224/001", wantErr: false},
		{name: "impossible day", ufn: "320425/001", wantErr: true},
		{name: "impossible month", ufn: "011325/001", wantErr: true},
		{name: "non-leap february 29th", ufn: "290225/001", wantErr: true},
		{name: "prefix too short", ufn: "1425/001", wantErr: true},
		{name: "prefix not numeric", ufn: "abcdef/001", wantErr: true},
		{name: "no slash still checks six chars", ufn: "010425", wantErr: false},
		{name: "blank left to mandatory check", ufn: "", wantErr: false},
		{name: "whitespace only left to mandatory check", ufn: "  ", wantErr: false},
	}

	check := NewUFNDate()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claim := &domain.Claim{ID: domain.NewClaimID(), UniqueFileNumber: tt.ufn}
			vctx := validation.NewContext()

			check.Validate(context.Background(), claim, vctx, domain.AreaCivil)

			assert.Equal(t, tt.wantErr, vctx.HasErrors(claim.ID))
		})
	}
}
