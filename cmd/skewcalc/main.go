package main

import (
	"flag"
	"fmt"
	"os"

	"spread-skew/config"
	"spread-skew/internal/engine"
	"spread-skew/inventory"
)

// 一次性计算库存倾斜系数：可从配置文件读取参数，命令行参数覆盖配置。
func main() {
	cfgPath := flag.String("config", "", "optional YAML config path")
	version := flag.String("version", "v2", "skew algorithm version (v1|v2)")
	base := flag.String("base", "", "base asset amount")
	quote := flag.String("quote", "", "quote asset amount")
	price := flag.String("price", "", "price (quote per base)")
	target := flag.Float64("target", 0.5, "target base value ratio [0,1]")
	baseRange := flag.Float64("range", 0, "v2: band half-width in base units")
	maxSkew := flag.Float64("maxSkew", 1, "v2: maximum skew factor")
	rangeMult := flag.Float64("rangeMultiplier", 1, "v1: tolerance band multiplier; v2: multiplier for derived range")
	orderAmount := flag.Float64("orderAmount", 0, "v2: first level order amount used to derive range")
	orderLevels := flag.Int("orderLevels", 1, "v2: order levels used to derive range")
	bidSpread := flag.Float64("bidSpread", 0, "base bid spread to adjust (optional)")
	askSpread := flag.Float64("askSpread", 0, "base ask spread to adjust (optional)")
	fillSide := flag.String("fillSide", "", "what-if fill side (BUY|SELL), applied after the first calculation")
	fillQty := flag.Float64("fillQty", 0, "what-if fill base quantity")
	fillPrice := flag.Float64("fillPrice", 0, "what-if fill price, defaults to -price")
	flag.Parse()

	var cfg config.AppConfig
	if *cfgPath != "" {
		loaded, err := config.LoadWithEnvOverrides(*cfgPath)
		if err != nil {
			fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	override := func(name string, apply func()) {
		if *cfgPath == "" || set[name] {
			apply()
		}
	}
	override("version", func() { cfg.Skew.Version = *version })
	override("target", func() { cfg.Skew.TargetBaseRatio = *target })
	override("range", func() { cfg.Skew.BaseRange = *baseRange })
	override("maxSkew", func() { cfg.Skew.MaximumSkewFactor = *maxSkew })
	override("rangeMultiplier", func() { cfg.Skew.RangeMultiplier = *rangeMult })
	override("orderAmount", func() { cfg.Skew.OrderAmount = *orderAmount })
	override("orderLevels", func() { cfg.Skew.OrderLevels = *orderLevels })
	if *base != "" {
		cfg.Inventory.Base = *base
	}
	if *quote != "" {
		cfg.Inventory.Quote = *quote
	}
	if *price != "" {
		cfg.Inventory.Price = *price
	}

	snap, err := inventory.ParseSnapshot(cfg.Inventory.Base, cfg.Inventory.Quote, cfg.Inventory.Price)
	if err != nil {
		fatalf("inventory: %v", err)
	}
	eng, err := engine.New(cfg.Skew, nil)
	if err != nil {
		fatalf("%v", err)
	}

	balances := &inventory.Balances{}
	balances.Set(snap.BaseAmount, snap.QuoteAmount)
	report(eng, balances, snap.Price, *bidSpread, *askSpread)

	if *fillSide != "" && *fillQty > 0 {
		px := *fillPrice
		if px <= 0 {
			px = snap.Price
		}
		if err := balances.ApplyFill(*fillSide, *fillQty, px); err != nil {
			fatalf("fill: %v", err)
		}
		fmt.Printf("after %s %.8f @ %.8f: base=%.8f quote=%.8f\n", *fillSide, *fillQty, px, balances.Base(), balances.Quote())
		report(eng, balances, snap.Price, *bidSpread, *askSpread)
	}
}

func report(eng *engine.SkewEngine, balances *inventory.Balances, price, bidSpread, askSpread float64) {
	snap := balances.Snapshot(price)
	r := eng.ComputeFrom(balances, price)
	fmt.Printf("version=%s base_ratio=%.6f total_value=%.6f\n", eng.Version(), snap.BaseRatio(), snap.TotalValue())
	fmt.Printf("bid_ratio=%.5f ask_ratio=%.5f\n", r.BidRatio, r.AskRatio)
	if bidSpread > 0 || askSpread > 0 {
		bid, ask := r.Apply(bidSpread, askSpread)
		fmt.Printf("bid_spread=%.8f ask_spread=%.8f\n", bid, ask)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "skewcalc: "+format+"\n", args...)
	os.Exit(1)
}
