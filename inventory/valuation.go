package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Snapshot 某一时刻的库存快照，price 为 quote/base 汇率。
type Snapshot struct {
	BaseAmount  float64
	QuoteAmount float64
	Price       float64
}

// BaseValue 以 quote 计价的 base 持仓价值。
func (s Snapshot) BaseValue() float64 {
	return s.BaseAmount * s.Price
}

// TotalValue 以 quote 计价的总资产。
func (s Snapshot) TotalValue() float64 {
	return s.BaseValue() + s.QuoteAmount
}

// BaseRatio base 价值占总资产比例，总资产为 0 时返回 0。
func (s Snapshot) BaseRatio() float64 {
	total := s.TotalValue()
	if total == 0 {
		return 0
	}
	return s.BaseValue() / total
}

// ParseSnapshot 解析交易所返回的十进制字符串余额与价格。
func ParseSnapshot(base, quote, price string) (Snapshot, error) {
	b, err := decimal.NewFromString(base)
	if err != nil {
		return Snapshot{}, fmt.Errorf("parse base amount %q: %w", base, err)
	}
	q, err := decimal.NewFromString(quote)
	if err != nil {
		return Snapshot{}, fmt.Errorf("parse quote amount %q: %w", quote, err)
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return Snapshot{}, fmt.Errorf("parse price %q: %w", price, err)
	}
	if b.IsNegative() || q.IsNegative() {
		return Snapshot{}, fmt.Errorf("balances must be >= 0, got base=%s quote=%s", base, quote)
	}
	if !p.IsPositive() {
		return Snapshot{}, fmt.Errorf("price must be > 0, got %s", price)
	}
	return Snapshot{
		BaseAmount:  b.InexactFloat64(),
		QuoteAmount: q.InexactFloat64(),
		Price:       p.InexactFloat64(),
	}, nil
}
