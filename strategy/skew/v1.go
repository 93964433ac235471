package skew

import "math"

// CalculateV1 旧版算法：比较 base 价值占比与目标占比。
//
// 偏离不超过 targetBaseRatio*rangeMultiplier 时不倾斜；超过后 bid/ask 使用同一个系数
// 1 + rangeMultiplier*偏离，上限 1 + rangeMultiplier。新接入请使用 CalculateV2。
func CalculateV1(baseAmount, quoteAmount, price, targetBaseRatio, rangeMultiplier float64) BidAskRatios {
	if baseAmount == 0 || quoteAmount == 0 || targetBaseRatio == 0 || rangeMultiplier == 0 || price <= 0 {
		return Neutral()
	}
	total := portfolioValue(baseAmount, quoteAmount, price)
	if total == 0 {
		return Neutral()
	}

	deviation := math.Abs(baseAmount*price/total - targetBaseRatio)
	band := math.Abs(targetBaseRatio * rangeMultiplier)
	if deviation <= band {
		return Neutral()
	}

	factor := math.Min(1+rangeMultiplier*deviation, 1+rangeMultiplier)
	return BidAskRatios{BidRatio: factor, AskRatio: factor}
}
