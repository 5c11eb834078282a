package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFeePercent(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   int64
	}{
		{"small amount pays base", "5000", 10},
		{"exactly 10000 still base", "10000", 10},
		{"just above 10000", "10000.01", 8},
		{"mid tier", "45000", 8},
		{"exactly 50000 stays mid", "50000", 8},
		{"above 50000", "60000", 6},
		{"exactly 100000 stays", "100000", 6},
		{"above 100000", "150000", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			assert.Equal(t, tt.want, FeePercent(amount))
		})
	}
}

func TestPlatformFee(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"45000 at 8 percent", "45000", "3600"},
		{"60000 at 6 percent", "60000", "3600"},
		{"200000 at 5 percent", "200000", "10000"},
		{"2500 at base percent", "2500", "250"},
		{"zero amount", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := PlatformFee(decimal.RequireFromString(tt.amount))
			assert.True(t, fee.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", fee, tt.want)
		})
	}
}
