package render

import (
	"context"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// Spinner shows progress on w while a command works. Messages sent to the
// returned channel replace the spinner's suffix; closing the channel stops
// it. On a non-TTY the messages are simply discarded.
func Spinner(ctx context.Context, w io.Writer) chan<- string {
	updates := make(chan string)
	go func() {
		// the spinner is confined to this goroutine
		var sp *spinner.Spinner
		if !color.NoColor {
			sp = spinner.New(spinner.CharSets[11], 200*time.Millisecond,
				spinner.WithWriter(w),
				spinner.WithColor("green"))
			sp.Start()
			defer sp.Stop()
		}
		for {
			select {
			case <-ctx.Done():
				return
			case msg, open := <-updates:
				if !open {
					return
				}
				if sp != nil {
					sp.Suffix = " " + msg
				}
			}
		}
	}()
	return updates
}
