package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"go.uber.org/zap"

	"spread-skew/config"
	"spread-skew/infrastructure/logger"
	"spread-skew/internal/engine"
	"spread-skew/inventory"
	"spread-skew/metrics"
)

// 常驻进程：加载配置、暴露 /metrics，并在配置文件变化时重新计算倾斜系数。
func main() {
	cfgPath := flag.String("config", "configs/skew.yaml", "YAML config path")
	cooldown := flag.Duration("cooldown", time.Second, "min interval between reloads")
	flag.Parse()

	cfg, err := config.LoadWithEnvOverrides(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if err := run(cfg, *cfgPath, *cooldown, log); err != nil && !errors.Is(err, context.Canceled) {
		log.LogError(err, map[string]interface{}{"config": *cfgPath})
		os.Exit(1)
	}
}

func run(cfg config.AppConfig, path string, cooldown time.Duration, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng, err := engine.New(cfg.Skew, log)
	if err != nil {
		return err
	}
	balances := &inventory.Balances{}
	recompute(eng, balances, cfg, log)

	if cfg.Metrics.Addr != "" {
		srv := metrics.StartMetricsServer(cfg.Metrics.Addr, log)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	w, err := config.NewWatcher(path, cooldown, log.Logger)
	if err != nil {
		return err
	}
	defer w.Close()

	if ok, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		log.Warn("sd_notify failed", zap.Error(err))
	} else if ok {
		log.Info("systemd notified ready")
	}
	go watchdog(ctx, log)

	err = w.Run(ctx, func(next config.AppConfig) {
		if err := eng.UpdateConfig(next.Skew); err != nil {
			log.LogError(err, map[string]interface{}{"event": "reload"})
			return
		}
		recompute(eng, balances, next, log)
	})
	_, _ = daemon.SdNotify(false, daemon.SdNotifyStopping)
	return err
}

// recompute 用配置中的库存快照刷新持仓并立即计算一次
func recompute(eng *engine.SkewEngine, balances *inventory.Balances, cfg config.AppConfig, log *logger.Logger) {
	if !cfg.Inventory.IsSet() {
		return
	}
	snap, err := cfg.Inventory.Snapshot()
	if err != nil {
		log.LogError(err, map[string]interface{}{"event": "inventory"})
		return
	}
	balances.Set(snap.BaseAmount, snap.QuoteAmount)
	eng.ComputeFrom(balances, snap.Price)
}

// watchdog 在 systemd 启用 WatchdogSec 时按半个周期发送心跳
func watchdog(ctx context.Context, log *logger.Logger) {
	interval, err := daemon.SdWatchdogEnabled(false)
	if err != nil {
		log.Warn("sd watchdog check failed", zap.Error(err))
		return
	}
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = daemon.SdNotify(false, daemon.SdNotifyWatchdog)
		}
	}
}
