package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice(t *testing.T) {
	percent := func(p int) *Percentage { return &Percentage{Percent: p} }

	tests := []struct {
		name     string
		price    float64
		sale     bool
		discount *Percentage
		expected float64
	}{
		{
			name:     "No_Sale",
			price:    59.99,
			sale:     false,
			discount: percent(50),
			expected: 59.99,
		},
		{
			name:     "Sale_Without_Percentage",
			price:    59.99,
			sale:     true,
			discount: nil,
			expected: 59.99,
		},
		{
			name:     "Half_Off",
			price:    59.99,
			sale:     true,
			discount: percent(50),
			expected: 30.0, // 29.995 rounds up
		},
		{
			name:     "Zero_Percent",
			price:    20.00,
			sale:     true,
			discount: percent(0),
			expected: 20.00,
		},
		{
			name:     "Full_Discount",
			price:    20.00,
			sale:     true,
			discount: percent(100),
			expected: 0,
		},
		{
			name:     "Discount_Above_100_Clamped",
			price:    20.00,
			sale:     true,
			discount: percent(150),
			expected: 0,
		},
		{
			name:     "Negative_Discount_Clamped",
			price:    20.00,
			sale:     true,
			discount: percent(-30),
			expected: 20.00,
		},
		{
			name:     "Rounds_To_Cents",
			price:    9.99,
			sale:     true,
			discount: percent(33),
			expected: 6.69, // 6.6933
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := Game{Price: tt.price, Sale: tt.sale, Percentage: tt.discount}
			assert.InDelta(t, tt.expected, game.EffectivePrice(), 0.0001)
		})
	}
}

func TestUserCoins(t *testing.T) {
	tests := []struct {
		name     string
		balance  float64
		expected int64
	}{
		{"Zero", 0, 0},
		{"Whole", 12, 1200},
		{"Cents", 12.34, 1234},
		{"Float_Noise", 0.29, 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := User{Balance: tt.balance}
			assert.Equal(t, tt.expected, user.Coins())
		})
	}
}
