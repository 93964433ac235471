package config

import (
	"fmt"

	"spread-skew/strategy/skew"
)

// ErrInvalid 用于参数验证错误。
type ErrInvalid string

func (e ErrInvalid) Error() string { return string(e) }

// Validate ensures required fields are present.
func Validate(cfg AppConfig) error {
	if cfg.Env == "" {
		return ErrInvalid("env is required")
	}
	if err := ValidateSkew(cfg.Skew); err != nil {
		return err
	}
	if cfg.Inventory.IsSet() {
		if _, err := cfg.Inventory.Snapshot(); err != nil {
			return ErrInvalid(fmt.Sprintf("inventory: %v", err))
		}
	}
	return nil
}

// ValidateSkew 校验倾斜参数；热更新时也单独调用。
func ValidateSkew(sc SkewConfig) error {
	v, err := sc.ParsedVersion()
	if err != nil {
		return ErrInvalid(fmt.Sprintf("skew.version: %v", err))
	}
	if sc.OrderAmount < 0 || sc.OrderLevelAmount < 0 {
		return ErrInvalid("skew.orderAmount/orderLevelAmount must be >= 0")
	}
	if sc.OrderLevels < 0 {
		return ErrInvalid("skew.orderLevels must be >= 0")
	}
	if err := sc.Params().Validate(v); err != nil {
		return ErrInvalid(fmt.Sprintf("skew: %v", err))
	}
	if v == skew.V1 && sc.RangeMultiplier <= 0 {
		return ErrInvalid("skew.rangeMultiplier must be > 0 for v1")
	}
	if v == skew.V2 && sc.BaseRangeValue() <= 0 {
		return ErrInvalid("skew.baseRange (or orderAmount*rangeMultiplier) must be > 0 for v2")
	}
	return nil
}
