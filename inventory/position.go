package inventory

import (
	"fmt"
	"sync"
)

// Balances 维护 base/quote 两种资产的当前持仓，由轮询余额的主循环更新。
type Balances struct {
	mu    sync.RWMutex
	base  float64
	quote float64
}

// Set 用交易所返回的余额覆盖本地持仓。
func (b *Balances) Set(base, quote float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.base = base
	b.quote = quote
}

// ApplyFill 根据成交调整持仓：BUY 增加 base、减少 quote，SELL 相反。
func (b *Balances) ApplyFill(side string, qty, price float64) error {
	if qty <= 0 || price <= 0 {
		return fmt.Errorf("invalid fill qty=%f price=%f", qty, price)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	switch side {
	case "BUY":
		b.base += qty
		b.quote -= qty * price
	case "SELL":
		b.base -= qty
		b.quote += qty * price
	default:
		return fmt.Errorf("unknown side: %s", side)
	}
	return nil
}

func (b *Balances) Base() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.base
}

func (b *Balances) Quote() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.quote
}
