//go:build unit

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name    string
		iso     string
		want    string
		wantErr bool
	}{
		{
			name: "full timestamp with Z",
			iso:  "2024-01-02T10:30:00Z",
			want: "02/01/2024",
		},
		{
			name: "timestamp with fractional seconds",
			iso:  "2024-03-15T08:00:00.123Z",
			want: "15/03/2024",
		},
		{
			name: "bare date",
			iso:  "2024-12-31",
			want: "31/12/2024",
		},
		{
			name: "absent date renders em-dash",
			iso:  "",
			want: EmDash,
		},
		{
			name:    "malformed date",
			iso:     "not-a-date",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDate(tt.iso)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
