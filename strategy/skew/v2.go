package skew

// CalculateV2 基于 base 数量区间计算 bid/ask 倾斜系数。
//
// 目标持仓 desired = targetBaseRatio * 总价值 / price，偏离量按 baseRange 归一化并截断到 [-1, 1]：
// 持仓过多时 bid 变宽、ask 变窄，反之亦然。极值为 (1, maximumSkewFactor+1)，
// 两个系数之和恒为 maximumSkewFactor+2。
func CalculateV2(baseAmount, quoteAmount, price, targetBaseRatio, baseRange, maximumSkewFactor float64) BidAskRatios {
	total := portfolioValue(baseAmount, quoteAmount, price)
	if total == 0 || baseRange == 0 || price <= 0 {
		return Neutral()
	}

	desired := targetBaseRatio * total / price
	x := clamp((baseAmount-desired)/baseRange, -1, 1)

	// maximumSkewFactor 为 0 时 center=1、half=0，自然得到中性结果
	center := (maximumSkewFactor + 2) / 2
	half := maximumSkewFactor / 2
	return BidAskRatios{
		BidRatio: center + half*x,
		AskRatio: center - half*x,
	}
}
