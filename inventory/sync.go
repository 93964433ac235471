package inventory

// Snapshot 在给定价格下生成当前持仓快照；Balances 为 nil 时返回空快照。
func (b *Balances) Snapshot(price float64) Snapshot {
	if b == nil {
		return Snapshot{Price: price}
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Snapshot{BaseAmount: b.base, QuoteAmount: b.quote, Price: price}
}
