// Package obslog is a small leveled logger for the codegen and fixture
// tools, in the shape of Knoblauchpilze-sogserver's pkg/logger: a
// viper-configurable minimum severity, a buffered channel so a burst of
// fixture-failure logs never blocks the evaluation loop, and a single
// background goroutine performing the actual writes. The damage
// calculation hot path never imports this package (spec.md §5: no
// suspension points, no allocations there).
package obslog

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Severity orders log messages from the most to the least verbose.
type Severity int

const (
	Debug Severity = iota
	Info
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

func parseSeverity(s string) Severity {
	switch s {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

// Logger is the interface codegen and fixture code logs through.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	// Close flushes any buffered messages and stops the background writer.
	Close()
}

type entry struct {
	level Severity
	line  string
}

// stdLogger writes leveled, timestamped lines to stderr through a buffered
// channel drained by a single background goroutine.
type stdLogger struct {
	module   string
	minLevel Severity
	entries  chan entry
	done     chan struct{}
	wg       sync.WaitGroup
	closeOne sync.Once
}

// New builds a Logger tagged with module, reading its minimum severity
// from viper key "log.level" (default "info") and its buffer size from
// "log.buffer" (default 256).
func New(module string) Logger {
	level := parseSeverity(viper.GetString("log.level"))
	buffer := viper.GetInt("log.buffer")
	if buffer <= 0 {
		buffer = 256
	}

	l := &stdLogger{
		module:   module,
		minLevel: level,
		entries:  make(chan entry, buffer),
		done:     make(chan struct{}),
	}
	l.wg.Add(1)
	go l.run()
	return l
}

func (l *stdLogger) run() {
	defer l.wg.Done()
	for {
		select {
		case e, ok := <-l.entries:
			if !ok {
				return
			}
			l.write(e)
		case <-l.done:
			for {
				select {
				case e, ok := <-l.entries:
					if !ok {
						return
					}
					l.write(e)
				default:
					return
				}
			}
		}
	}
}

func (l *stdLogger) write(e entry) {
	fmt.Fprintf(os.Stderr, "%s [%s] %-5s %s\n", time.Now().Format("2006-01-02 15:04:05"), l.module, e.level, e.line)
}

func (l *stdLogger) log(level Severity, format string, args ...any) {
	if level < l.minLevel {
		return
	}
	e := entry{level: level, line: fmt.Sprintf(format, args...)}
	select {
	case l.entries <- e:
	default:
		// Buffer full: drop rather than block the fixture evaluation loop.
	}
}

func (l *stdLogger) Debug(format string, args ...any) { l.log(Debug, format, args...) }
func (l *stdLogger) Info(format string, args ...any)  { l.log(Info, format, args...) }
func (l *stdLogger) Warn(format string, args ...any)  { l.log(Warn, format, args...) }
func (l *stdLogger) Error(format string, args ...any) { l.log(Error, format, args...) }

func (l *stdLogger) Close() {
	l.closeOne.Do(func() {
		close(l.done)
		l.wg.Wait()
	})
}
