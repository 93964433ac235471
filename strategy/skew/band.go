package skew

// TotalOrderSize 一侧挂单阶梯的总数量：第 i 层为 orderAmount + i*orderLevelAmount。
// orderLevels 小于 1 时按 1 层计算。
func TotalOrderSize(orderAmount, orderLevelAmount float64, orderLevels int) float64 {
	if orderLevels < 1 {
		orderLevels = 1
	}
	total := 0.0
	for i := 0; i < orderLevels; i++ {
		total += orderAmount + float64(i)*orderLevelAmount
	}
	return total
}

// BaseRangeFromOrders 未显式配置 baseRange 时，用一整组挂单数量乘以倍数作为 v2 区间半宽。
func BaseRangeFromOrders(orderAmount, orderLevelAmount float64, orderLevels int, rangeMultiplier float64) float64 {
	return TotalOrderSize(orderAmount, orderLevelAmount, orderLevels) * rangeMultiplier
}
