package inventory

import "testing"

func TestBalancesSnapshot(t *testing.T) {
	b := &Balances{}
	b.Set(2, 300)
	s := b.Snapshot(150)
	if s.BaseAmount != 2 || s.QuoteAmount != 300 || s.Price != 150 {
		t.Fatalf("unexpected snapshot %+v", s)
	}

	var nilBalances *Balances
	if got := nilBalances.Snapshot(10); got.TotalValue() != 0 {
		t.Fatalf("expected empty snapshot, got %+v", got)
	}
}
