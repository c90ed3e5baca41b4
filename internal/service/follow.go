package service

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
)

func watchFile(path string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}
	return w, nil
}

// follow applies lines appended to the log as the solver writes them,
// calling batch once up front and again after every applied batch. It
// returns nil when ctx is done or the file is removed or renamed.
func (c *conversion) follow(ctx context.Context, w *fsnotify.Watcher, feed *lineFeed, batch func() error) error {
	if err := batch(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				return nil
			}
			if !ev.Has(fsnotify.Write) {
				continue
			}
			if err := c.drain(ctx, feed); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			if err := batch(); err != nil {
				return err
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", c.req.InputPath, err)
		}
	}
}

// refresh rewrites the latest output files when no render frequency is set
// and records arrived since the last snapshot.
func (c *conversion) refresh(ctx context.Context) error {
	if c.req.Frequency > 0 || c.pending == 0 {
		return nil
	}
	if err := c.checkpoint(ctx, c.req.OutputBase); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
