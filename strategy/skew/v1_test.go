package skew

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateV1_ZeroInputs(t *testing.T) {
	const (
		base  = 100.0
		quote = 10.0
		price = 1.0
		param = 0.05
		mult  = 5.0
	)
	testCases := []struct {
		name string
		got  BidAskRatios
	}{
		{"base 为零", CalculateV1(0, quote, price, param, mult)},
		{"quote 为零", CalculateV1(base, 0, price, param, mult)},
		{"目标占比为零", CalculateV1(base, quote, price, 0, mult)},
		{"倍数为零", CalculateV1(base, quote, price, param, 0)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, 1.0, tc.got.BidRatio, 1e-9)
			assert.InDelta(t, 1.0, tc.got.AskRatio, 1e-9)
		})
	}
}

func TestCalculateV1_WithinBandIsNeutral(t *testing.T) {
	r := CalculateV1(1, 100, 1, 0.05, 5)
	assert.True(t, r.IsNeutral(), "got %+v", r)
}

func TestCalculateV1_ReturnsSymmetricFactor(t *testing.T) {
	r := CalculateV1(50, 100, 1, 0.05, 5)
	assert.InDelta(t, 2.416666, r.BidRatio, 1e-5)
	assert.InDelta(t, 2.416666, r.AskRatio, 1e-5)
}

func TestCalculateV1_SymmetricAndBounded(t *testing.T) {
	const mult = 2.0
	prev := 1.0
	// base 占比从 target 向上偏离，系数单调不减
	for base := 10.0; base <= 10000; base *= 1.5 {
		r := CalculateV1(base, 100, 1, 0.1, mult)
		assert.Equal(t, r.BidRatio, r.AskRatio)
		assert.GreaterOrEqual(t, r.BidRatio, 1.0)
		assert.LessOrEqual(t, r.BidRatio, 1+mult)
		assert.GreaterOrEqual(t, r.BidRatio, prev)
		prev = r.BidRatio
	}
}
