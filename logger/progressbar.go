package logger

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// ProgressBar wraps a terminal progress bar. A bar created without a writer
// is inert: every method is a no-op.
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

func NewProgressBar(total int64, label string, out io.Writer, colors bool) *ProgressBar {
	if out == nil || total <= 0 {
		return &ProgressBar{}
	}

	bar := progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionEnableColorCodes(colors),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
	return &ProgressBar{bar: bar}
}

func (p *ProgressBar) Describe(label string) {
	if p.bar == nil {
		return
	}
	p.bar.Describe(label)
}

func (p *ProgressBar) Increment(amount int64) {
	if p.bar == nil {
		return
	}
	_ = p.bar.Add64(amount)
}

func (p *ProgressBar) Complete() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
}
