// Package skew 根据当前库存计算买卖价差的倾斜系数。
//
// 两个版本共享同一输出类型 BidAskRatios：
//   - V2：以 base 资产数量为单位的目标区间，按偏离程度反向倾斜 bid/ask（推荐）。
//   - V1：以 base 价值占比为单位的阈值判断，bid/ask 对称放大（仅为兼容保留）。
//
// 所有函数均为纯函数，无状态、无 I/O，可在任意 goroutine 中并发调用。
package skew

// BidAskRatios 是策略在基础 bid/ask spread 上乘的系数，不是 spread 本身。
type BidAskRatios struct {
	BidRatio float64
	AskRatio float64
}

// Neutral 返回不做任何倾斜的结果 (1, 1)。
func Neutral() BidAskRatios {
	return BidAskRatios{BidRatio: 1.0, AskRatio: 1.0}
}

// IsNeutral 判断是否为中性结果。
func (r BidAskRatios) IsNeutral() bool {
	return r.BidRatio == 1.0 && r.AskRatio == 1.0
}

// Apply 将系数应用到调用方配置的 bid/ask spread 上。
func (r BidAskRatios) Apply(bidSpread, askSpread float64) (float64, float64) {
	return bidSpread * r.BidRatio, askSpread * r.AskRatio
}

// clamp 将 v 限制在 [lo, hi]。
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// portfolioValue 以 quote 计价的总资产。
func portfolioValue(baseAmount, quoteAmount, price float64) float64 {
	return baseAmount*price + quoteAmount
}
