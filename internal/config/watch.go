package config

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// Watch re-loads path whenever it changes and delivers each valid result to
// onChange, until ctx is cancelled. Invalid intermediate states (truncated
// writes, parse errors) are logged and skipped, keeping the last good config
// in effect.
//
// The parent directory is watched rather than the file itself so that
// editors which replace the file by rename keep being observed. Editor event
// bursts are coalesced with a rate limiter.
func Watch(ctx context.Context, path string, onChange func(Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	// One reload per 200ms is plenty; editors fire several events per
	// save.
	limiter := rate.NewLimiter(rate.Every(200*time.Millisecond), 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || abs != target {
				continue
			}
			if !limiter.Allow() {
				continue
			}
			cfg, err := Load(path)
			if err != nil {
				log.Printf("config reload skipped: %v", err)
				continue
			}
			onChange(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("config watcher: %v", err)
		}
	}
}
