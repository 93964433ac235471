package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher 监听配置文件所在目录，文件写入/创建时重新加载并回调。
// 监听目录而非文件本身，编辑器 rename 覆盖时也能收到事件。
type Watcher struct {
	path       string
	cooldown   time.Duration
	log        *zap.Logger
	fw         *fsnotify.Watcher
	lastReload time.Time
}

// NewWatcher 创建并注册监听；cooldown 内的重复事件被忽略。
func NewWatcher(path string, cooldown time.Duration, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch config dir: %w", err)
	}
	return &Watcher{path: filepath.Clean(path), cooldown: cooldown, log: log, fw: fw}, nil
}

// Run 阻塞直到 ctx 结束；回调收到的配置已通过校验。
// cooldown 内到达的事件不会丢弃，冷却结束后补一次重载，保证一串写入中的最后一次生效。
func (w *Watcher) Run(ctx context.Context, onUpdate func(AppConfig)) error {
	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-pending:
			pending = nil
			w.reload(onUpdate)
		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if wait := w.remainingCooldown(); wait > 0 {
				if pending == nil {
					timer = time.NewTimer(wait)
					pending = timer.C
				}
				continue
			}
			w.reload(onUpdate)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			// 记录错误但继续监听
			w.log.Warn("config watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) remainingCooldown() time.Duration {
	if w.lastReload.IsZero() {
		return 0
	}
	return w.cooldown - time.Since(w.lastReload)
}

func (w *Watcher) reload(onUpdate func(AppConfig)) {
	cfg, err := LoadWithEnvOverrides(w.path)
	if err != nil {
		// 写入过程中可能读到半截文件，等待下一次事件
		w.log.Warn("config reload failed", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.lastReload = time.Now()
	w.log.Info("config reloaded", zap.String("path", w.path), zap.String("skew_version", cfg.Skew.Version))
	if onUpdate != nil {
		onUpdate(cfg)
	}
}

// Close 释放 fsnotify 资源。
func (w *Watcher) Close() error {
	return w.fw.Close()
}
