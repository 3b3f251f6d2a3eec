package ui

import (
	"fmt"
	"os"
	"sync"
	"time"
)

type Loader struct {
	msg      string
	interval time.Duration
	done     chan struct{}
	wg       sync.WaitGroup
	enabled  bool
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// Start runs a spinner on stdout until Stop is called. On non-TTY output it is
// a no-op so logs stay clean when piped.
func Start(message string, interval time.Duration) *Loader {
	l := &Loader{
		msg:      message,
		interval: interval,
		done:     make(chan struct{}),
		enabled:  isTerminal(),
	}
	if !l.enabled {
		return l
	}
	frames := []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		t := time.NewTicker(l.interval)
		defer t.Stop()
		i := 0
		for {
			select {
			case <-l.done:
				fmt.Fprint(os.Stdout, "\r\033[2K")
				return
			case <-t.C:
				fmt.Fprintf(os.Stdout, "\r\033[2K⏳ %s %c", l.msg, frames[i%len(frames)])
				i++
			}
		}
	}()
	return l
}

// TickHint replaces the spinner line with a progress hint.
func (l *Loader) TickHint(hint string) {
	if !l.enabled {
		return
	}
	fmt.Fprintf(os.Stdout, "\r\033[2K⏳ %s — %s", l.msg, hint)
}

func (l *Loader) Stop(finalLine string) {
	if !l.enabled {
		return
	}
	select {
	case <-l.done:
	default:
		close(l.done)
	}
	l.wg.Wait()
	if finalLine != "" {
		fmt.Fprintf(os.Stdout, "\r\033[2K%s\n", finalLine)
	} else {
		fmt.Fprintln(os.Stdout)
	}
}
