// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

package infrastructure

import (
	"io"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/rafaelvolkmer/codesmell/internal/domain/ports"
)

// BarProgress draws a file counter on w while files are analyzed.
type BarProgress struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

func NewBarProgress(out io.Writer) *BarProgress {
	return &BarProgress{out: out}
}

var _ ports.ProgressReporter = (*BarProgress)(nil)

func (p *BarProgress) Start(total int) {
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionSetDescription("Analyzing files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("files"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

// Advance counts one finished file and shows its name.
func (p *BarProgress) Advance(path string) {
	if p.bar == nil {
		return
	}
	p.bar.Describe("Analyzed " + filepath.Base(path))
	_ = p.bar.Add(1)
}

func (p *BarProgress) Finish() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
	p.bar = nil
}
