// Package metrics provides Prometheus metrics for the inventory skew calculator
package metrics

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"spread-skew/infrastructure/logger"
)

var (
	// SkewBidRatio 最近一次计算的 bid 系数
	SkewBidRatio = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mm_inventory_skew_bid_ratio",
		Help: "Latest bid spread multiplier from inventory skew",
	})
	// SkewAskRatio 最近一次计算的 ask 系数
	SkewAskRatio = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mm_inventory_skew_ask_ratio",
		Help: "Latest ask spread multiplier from inventory skew",
	})
	InventoryBaseRatio = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mm_inventory_base_ratio",
		Help: "Base asset share of total portfolio value",
	})
	InventoryTotalValue = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mm_inventory_total_value",
		Help: "Total portfolio value in quote units",
	})
	// SkewCalculations 按版本与是否中性统计计算次数
	SkewCalculations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mm_inventory_skew_calculations_total",
		Help: "Number of inventory skew calculations",
	}, []string{"version", "neutral"})
)

// UpdateSkewMetrics 更新倾斜相关指标
func UpdateSkewMetrics(version string, neutral bool, bidRatio, askRatio, baseRatio, totalValue float64) {
	SkewBidRatio.Set(bidRatio)
	SkewAskRatio.Set(askRatio)
	InventoryBaseRatio.Set(baseRatio)
	InventoryTotalValue.Set(totalValue)
	SkewCalculations.WithLabelValues(version, strconv.FormatBool(neutral)).Inc()
}

// StartMetricsServer 启动Prometheus指标服务器，监听失败时记录错误
func StartMetricsServer(addr string, log *logger.Logger) *http.Server {
	if log == nil {
		log = &logger.Logger{Logger: zap.NewNop()}
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		log.Info("metrics server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.LogError(err, map[string]interface{}{
				"component": "metrics",
				"action":    "listen",
				"addr":      addr,
			})
		}
	}()
	return srv
}
