package skew

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("")
	require.NoError(t, err)
	assert.Equal(t, V2, v)

	v, err = ParseVersion(" V1 ")
	require.NoError(t, err)
	assert.Equal(t, V1, v)

	_, err = ParseVersion("v3")
	assert.Error(t, err)
}

func TestCalculate_Dispatch(t *testing.T) {
	p := Params{TargetBaseRatio: 0.35, BaseRange: 30, MaximumSkewFactor: 5, RangeMultiplier: 5}

	assert.Equal(t, CalculateV2(30, 100, 1, 0.35, 30, 5), Calculate(V2, 30, 100, 1, p))

	p.TargetBaseRatio = 0.05
	assert.Equal(t, CalculateV1(50, 100, 1, 0.05, 5), Calculate(V1, 50, 100, 1, p))

	assert.Equal(t, Neutral(), Calculate(Version("v9"), 50, 100, 1, p))
}

func TestParams_Validate(t *testing.T) {
	ok := Params{TargetBaseRatio: 0.5, BaseRange: 10, MaximumSkewFactor: 2, RangeMultiplier: 1}
	assert.NoError(t, ok.Validate(V1))
	assert.NoError(t, ok.Validate(V2))

	bad := ok
	bad.TargetBaseRatio = 1.2
	assert.Error(t, bad.Validate(V2))

	bad = ok
	bad.BaseRange = -1
	assert.Error(t, bad.Validate(V2))
	assert.NoError(t, bad.Validate(V1))

	bad = ok
	bad.MaximumSkewFactor = -1
	assert.Error(t, bad.Validate(V2))

	bad = ok
	bad.RangeMultiplier = -1
	assert.Error(t, bad.Validate(V1))

	assert.Error(t, ok.Validate(Version("x")))
}

func TestBidAskRatios_Apply(t *testing.T) {
	bid, ask := BidAskRatios{BidRatio: 2, AskRatio: 0.5}.Apply(0.001, 0.002)
	assert.InDelta(t, 0.002, bid, 1e-15)
	assert.InDelta(t, 0.001, ask, 1e-15)

	bid, ask = Neutral().Apply(0.001, 0.002)
	assert.Equal(t, 0.001, bid)
	assert.Equal(t, 0.002, ask)
}

func TestBaseRangeFromOrders(t *testing.T) {
	assert.Equal(t, 1.0, TotalOrderSize(1, 0.5, 0))
	// 1 + 1.5 + 2
	assert.InDelta(t, 4.5, TotalOrderSize(1, 0.5, 3), 1e-12)
	assert.InDelta(t, 9.0, BaseRangeFromOrders(1, 0.5, 3, 2), 1e-12)
	assert.Equal(t, 0.0, BaseRangeFromOrders(1, 0, 1, 0))
}
