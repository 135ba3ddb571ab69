package democlient

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// Run initializes the screen and drives the engine from it until ctx is
// canceled, the user quits (:q/:qa), or the screen reports an error.
// Screen.PollEvent is blocking, so events are read on their own goroutine
// and delivered to this loop over a channel; Screen.Fini (via Close)
// unblocks that goroutine on the way out, following the teacher's
// startInputPolling pattern.
func (c *Client) Run(ctx context.Context) error {
	if err := c.screen.Init(); err != nil {
		return err
	}
	c.screen.EnablePaste()

	if c.watcher != nil {
		if err := c.watcher.Watch(); err != nil {
			c.logger.Warn("settings watch: %s", err)
		}
	}

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	c.render()

	for {
		select {
		case <-ctx.Done():
			return nil

		case t := <-c.settingsCh:
			c.settings = t
			c.engine.SetDisableCommandKey(t.DisableCommand, true)
			c.render()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			c.handleEvent(ev)
			if c.quit {
				return nil
			}
			c.render()

		case <-done:
			return nil
		}
	}
}

func (c *Client) handleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		c.engine.Process(convertKeyEvent(e))
	case *tcell.EventResize:
		c.screen.Sync()
	}
}
