package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"spread-skew/infrastructure/logger"
	"spread-skew/inventory"
	"spread-skew/strategy/skew"
)

// AppConfig holds the main runtime configuration.
type AppConfig struct {
	Env       string          `yaml:"env"`
	Log       logger.Config   `yaml:"log"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Skew      SkewConfig      `yaml:"skew"`
	Inventory InventoryConfig `yaml:"inventory"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"` // 为空则不启动 /metrics
}

// SkewConfig 库存倾斜参数。
type SkewConfig struct {
	Version           string  `yaml:"version"`           // v1 | v2，默认 v2
	TargetBaseRatio   float64 `yaml:"targetBaseRatio"`   // 目标 base 价值占比
	BaseRange         float64 `yaml:"baseRange"`         // v2 区间半宽（base 数量），0 时由挂单数量推导
	MaximumSkewFactor float64 `yaml:"maximumSkewFactor"` // v2 最大倾斜
	RangeMultiplier   float64 `yaml:"rangeMultiplier"`   // v1 容忍带倍数；v2 推导区间时的倍数
	OrderAmount       float64 `yaml:"orderAmount"`       // 首层挂单数量
	OrderLevelAmount  float64 `yaml:"orderLevelAmount"`  // 每层递增数量
	OrderLevels       int     `yaml:"orderLevels"`       // 每侧挂单层数
}

// InventoryConfig 静态库存快照，交易所返回的十进制字符串。
type InventoryConfig struct {
	Base  string `yaml:"base"`
	Quote string `yaml:"quote"`
	Price string `yaml:"price"`
}

// Load reads YAML config from path and applies basic validation.
func Load(path string) (AppConfig, error) {
	var cfg AppConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse yaml: %w", err)
	}
	applyLogDefaults(&cfg.Log)
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadWithEnvOverrides loads config then overrides fields from env vars if present.
func LoadWithEnvOverrides(path string) (AppConfig, error) {
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	if v := os.Getenv("SKEW_VERSION"); v != "" {
		cfg.Skew.Version = v
	}
	if v := os.Getenv("SKEW_METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
	return cfg, Validate(cfg)
}

func applyLogDefaults(c *logger.Config) {
	def := logger.DefaultConfig()
	if c.Level == "" {
		c.Level = def.Level
	}
	if len(c.Outputs) == 0 {
		c.Outputs = def.Outputs
	}
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.MaxSize == 0 {
		c.MaxSize = def.MaxSize
	}
	if c.MaxBackups == 0 {
		c.MaxBackups = def.MaxBackups
	}
	if c.MaxAge == 0 {
		c.MaxAge = def.MaxAge
	}
}

// ParsedVersion 返回解析后的算法版本。
func (c SkewConfig) ParsedVersion() (skew.Version, error) {
	return skew.ParseVersion(c.Version)
}

// BaseRangeValue 显式 baseRange 优先，否则为整组挂单数量乘以 rangeMultiplier。
func (c SkewConfig) BaseRangeValue() float64 {
	if c.BaseRange > 0 {
		return c.BaseRange
	}
	if c.OrderAmount > 0 {
		return skew.BaseRangeFromOrders(c.OrderAmount, c.OrderLevelAmount, c.OrderLevels, c.RangeMultiplier)
	}
	return 0
}

// Params 转换为计算参数。
func (c SkewConfig) Params() skew.Params {
	return skew.Params{
		TargetBaseRatio:   c.TargetBaseRatio,
		BaseRange:         c.BaseRangeValue(),
		MaximumSkewFactor: c.MaximumSkewFactor,
		RangeMultiplier:   c.RangeMultiplier,
	}
}

// Snapshot 解析配置中的库存快照。
func (c InventoryConfig) Snapshot() (inventory.Snapshot, error) {
	return inventory.ParseSnapshot(c.Base, c.Quote, c.Price)
}

// IsSet 三个字段都配置时才视为有效快照。
func (c InventoryConfig) IsSet() bool {
	return c.Base != "" && c.Quote != "" && c.Price != ""
}
