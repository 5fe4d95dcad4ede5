package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

type Console struct {
	Logger       *slog.Logger
	Out          io.Writer
	ProgressOut  io.Writer
	Colorized    bool
	ShowProgress bool
}

func NewConsole(opts *RichLoggerOptions) *Console {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ProgressOutput == nil {
		opts.ProgressOutput = os.Stderr
	}

	// JSON logs are meant for machines; ANSI codes would end up inside msg.
	colorized := opts.EnableColors && !opts.EnableJSON

	return &Console{
		Logger:       NewRichLogger(opts),
		Out:          opts.Output,
		ProgressOut:  opts.ProgressOutput,
		Colorized:    colorized,
		ShowProgress: opts.EnableProgress && !opts.EnableJSON,
	}
}

// Discard returns a console that drops everything. Useful in tests.
func Discard() *Console {
	return NewConsole(&RichLoggerOptions{
		Output:         io.Discard,
		ProgressOutput: io.Discard,
		Level:          slog.LevelError + 1,
	})
}

func (c *Console) StartTimer(name string) *Timer {
	return &Timer{
		Name:      name,
		StartTime: time.Now(),
		Console:   c,
	}
}

func (c *Console) Success(format string, args ...interface{}) {
	msg := "✓ " + fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = Green + Bold + msg + Reset
	}
	c.Logger.Info(msg)
}

func (c *Console) Info(format string, args ...interface{}) {
	msg := "ℹ " + fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = Blue + Bold + msg + Reset
	}
	c.Logger.Info(msg)
}

func (c *Console) Warn(format string, args ...interface{}) {
	msg := "⚠ " + fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = Yellow + Bold + msg + Reset
	}
	c.Logger.Warn(msg)
}

func (c *Console) Error(format string, args ...interface{}) {
	msg := "✖ " + fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = Red + Bold + msg + Reset
	}
	c.Logger.Error(msg)
}

// NewProgressBar returns a bar on ProgressOut, or an inert bar when
// progress display is off.
func (c *Console) NewProgressBar(total int64, label string) *ProgressBar {
	if !c.ShowProgress {
		return NewProgressBar(total, label, nil, false)
	}
	return NewProgressBar(total, label, c.ProgressOut, c.Colorized)
}

func (c *Console) NewTable(headers []string) *Table {
	return NewTable(headers, c.Out)
}

func (c *Console) Box(title string, content string) {
	lines := splitLines(content)
	maxWidth := len(title)

	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}

	maxWidth += 4

	fmt.Fprintln(c.Out, "┌"+"─"+title+"─"+strings.Repeat("─", maxWidth-len(title)-2)+"┐")

	for _, line := range lines {
		fmt.Fprintln(c.Out, "│ "+line+strings.Repeat(" ", maxWidth-len(line))+" │")
	}

	fmt.Fprintln(c.Out, "└"+strings.Repeat("─", maxWidth+2)+"┘")
}

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
