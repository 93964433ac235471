package skew

import (
	"fmt"
	"strings"
)

// Version 选择使用的算法版本。
type Version string

const (
	V1 Version = "v1"
	V2 Version = "v2"
)

// ParseVersion 解析配置中的版本字符串，空串默认 v2。
func ParseVersion(s string) (Version, error) {
	switch Version(strings.ToLower(strings.TrimSpace(s))) {
	case "", V2:
		return V2, nil
	case V1:
		return V1, nil
	default:
		return "", fmt.Errorf("unknown skew version: %q", s)
	}
}

// Params 静态配置参数，两个版本各取所需。
type Params struct {
	TargetBaseRatio   float64 // 目标 base 价值占比 [0,1]
	BaseRange         float64 // v2: 区间半宽（base 数量）
	MaximumSkewFactor float64 // v2: 系数偏离 1 的上限
	RangeMultiplier   float64 // v1: 容忍带宽倍数
}

// Validate 检查调用方配置；计算本身不会因参数出错而失败。
func (p Params) Validate(v Version) error {
	if p.TargetBaseRatio < 0 || p.TargetBaseRatio > 1 {
		return fmt.Errorf("targetBaseRatio must be in [0,1], got %v", p.TargetBaseRatio)
	}
	switch v {
	case V1:
		if p.RangeMultiplier < 0 {
			return fmt.Errorf("rangeMultiplier must be >= 0, got %v", p.RangeMultiplier)
		}
	case V2:
		if p.BaseRange < 0 {
			return fmt.Errorf("baseRange must be >= 0, got %v", p.BaseRange)
		}
		if p.MaximumSkewFactor < 0 {
			return fmt.Errorf("maximumSkewFactor must be >= 0, got %v", p.MaximumSkewFactor)
		}
	default:
		return fmt.Errorf("unknown skew version: %q", v)
	}
	return nil
}

// Calculate 按版本分发；未知版本返回中性结果。
func Calculate(v Version, baseAmount, quoteAmount, price float64, p Params) BidAskRatios {
	switch v {
	case V1:
		return CalculateV1(baseAmount, quoteAmount, price, p.TargetBaseRatio, p.RangeMultiplier)
	case V2:
		return CalculateV2(baseAmount, quoteAmount, price, p.TargetBaseRatio, p.BaseRange, p.MaximumSkewFactor)
	default:
		return Neutral()
	}
}
