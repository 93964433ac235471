package engine

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"spread-skew/config"
	"spread-skew/infrastructure/logger"
	"spread-skew/inventory"
	"spread-skew/metrics"
	"spread-skew/strategy/skew"
)

// SkewEngine 按当前配置选择算法版本计算库存倾斜，并上报指标/日志。
// 配置可在运行时热更新；计算本身无状态，可并发调用。
type SkewEngine struct {
	mu      sync.RWMutex
	version skew.Version
	params  skew.Params

	logger *logger.Logger

	lastMu  sync.Mutex
	last    skew.BidAskRatios
	hasLast bool
}

// New 创建引擎，配置非法时返回错误
func New(cfg config.SkewConfig, log *logger.Logger) (*SkewEngine, error) {
	if log == nil {
		log = &logger.Logger{Logger: zap.NewNop()}
	}
	e := &SkewEngine{logger: log}
	if err := e.UpdateConfig(cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateConfig 校验后替换参数，校验失败时保留旧参数
func (e *SkewEngine) UpdateConfig(cfg config.SkewConfig) error {
	if err := config.ValidateSkew(cfg); err != nil {
		return fmt.Errorf("invalid skew config: %w", err)
	}
	v, _ := cfg.ParsedVersion()
	p := cfg.Params()

	e.mu.Lock()
	e.version = v
	e.params = p
	e.mu.Unlock()

	e.logger.Info("skew config applied",
		zap.String("version", string(v)),
		zap.Float64("target_base_ratio", p.TargetBaseRatio),
		zap.Float64("base_range", p.BaseRange),
		zap.Float64("maximum_skew_factor", p.MaximumSkewFactor),
		zap.Float64("range_multiplier", p.RangeMultiplier),
	)
	return nil
}

// Version 当前生效的算法版本
func (e *SkewEngine) Version() skew.Version {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.version
}

func (e *SkewEngine) current() (skew.Version, skew.Params) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.version, e.params
}

// Compute 计算一次库存快照对应的 bid/ask 系数
func (e *SkewEngine) Compute(snap inventory.Snapshot) skew.BidAskRatios {
	v, p := e.current()
	r := skew.Calculate(v, snap.BaseAmount, snap.QuoteAmount, snap.Price, p)

	metrics.UpdateSkewMetrics(string(v), r.IsNeutral(), r.BidRatio, r.AskRatio, snap.BaseRatio(), snap.TotalValue())
	e.record(v, snap, r)
	return r
}

// ComputeFrom 以给定价格对当前持仓取快照并计算
func (e *SkewEngine) ComputeFrom(b *inventory.Balances, price float64) skew.BidAskRatios {
	return e.Compute(b.Snapshot(price))
}

// ComputeBatch 对一组快照逐个计算（回测/调参用），不上报指标
func (e *SkewEngine) ComputeBatch(snaps []inventory.Snapshot) []skew.BidAskRatios {
	v, p := e.current()
	res := make([]skew.BidAskRatios, 0, len(snaps))
	for _, s := range snaps {
		res = append(res, skew.Calculate(v, s.BaseAmount, s.QuoteAmount, s.Price, p))
	}
	return res
}

// Spreads 返回按倾斜系数调整后的 bid/ask spread
func (e *SkewEngine) Spreads(snap inventory.Snapshot, bidSpread, askSpread float64) (float64, float64) {
	return e.Compute(snap).Apply(bidSpread, askSpread)
}

// record 结果变化时记 info，否则只记 debug
func (e *SkewEngine) record(v skew.Version, snap inventory.Snapshot, r skew.BidAskRatios) {
	e.lastMu.Lock()
	changed := !e.hasLast || e.last != r
	e.last, e.hasLast = r, true
	e.lastMu.Unlock()

	if !changed {
		e.logger.Debug("skew unchanged",
			zap.Float64("bid_ratio", r.BidRatio),
			zap.Float64("ask_ratio", r.AskRatio),
		)
		return
	}
	e.logger.WithFields(map[string]interface{}{"version": string(v)}).LogSkew("ratios_changed", map[string]interface{}{
		"base":       snap.BaseAmount,
		"quote":      snap.QuoteAmount,
		"price":      snap.Price,
		"base_ratio": snap.BaseRatio(),
		"bid_ratio":  r.BidRatio,
		"ask_ratio":  r.AskRatio,
	})
}
