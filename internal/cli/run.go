package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/ReblochonMasque/percolation/internal/config"
	"github.com/ReblochonMasque/percolation/percolation"
)

// Run opens sites in order on a fresh cfg.Size grid and writes the final grid
// and a summary to w. It owns the model; all drawing happens here, after each
// Open returns, never from inside the model.
// An out-of-range site aborts the run with an error wrapping percolation.ErrOutOfRange.
func Run(w io.Writer, cfg config.Config, sites []Site, logger *zap.Logger) error {
	m, err := percolation.New(cfg.Size)
	if err != nil {
		return err
	}
	glyphs := cfg.RenderGlyphs()
	logger.Debug("grid created", zap.Int("size", cfg.Size), zap.Int("sites", len(sites)))

	for i, s := range sites {
		step := i + 1
		if err := m.Open(s.Row, s.Col); err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
		logger.Debug("site opened",
			zap.Int("step", step),
			zap.Int("row", s.Row),
			zap.Int("col", s.Col),
			zap.Int("open", m.NumberOfOpenSites()),
			zap.Bool("percolates", m.Percolates()),
		)
		if cfg.ShowSteps {
			fmt.Fprintf(w, "step %d: open (%d,%d)\n%s\n", step, s.Row, s.Col, m.Render(glyphs))
		}
		if cfg.StopOnPercolation && m.Percolates() {
			logger.Info("grid percolates", zap.Int("step", step), zap.Int("open", m.NumberOfOpenSites()))
			break
		}
	}

	writeSummary(w, m, glyphs)

	return nil
}

// writeSummary prints the grid followed by open-site, cluster and percolation lines.
func writeSummary(w io.Writer, m *percolation.Model, glyphs percolation.Glyphs) {
	open := m.NumberOfOpenSites()
	total := m.Size() * m.Size()
	fmt.Fprint(w, m.Render(glyphs))
	fmt.Fprintf(w, "open sites: %s / %s (%.1f%%)\n",
		humanize.Comma(int64(open)), humanize.Comma(int64(total)), 100*float64(open)/float64(total))
	fmt.Fprintf(w, "clusters: %d\n", len(m.Clusters()))
	fmt.Fprintf(w, "percolates: %t\n", m.Percolates())
}
