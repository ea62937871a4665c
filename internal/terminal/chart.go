package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/smokeytempo/timelinegen/internal/domain"
	"github.com/smokeytempo/timelinegen/internal/usecase"
)

const barRune = "█"

var barColor = color.New(color.FgHiGreen).SprintFunc()

// Chart draws bar charts as horizontal text bars, one line per label.
// Bars start at zero and are one cell wide per unit.
type Chart struct {
	current *domain.BarChart
}

type textChart struct {
	owner *Chart
	bars  *domain.BarChart
}

// NewChart binds a chart; any previously bound chart is replaced.
func (c *Chart) NewChart(chart domain.BarChart) (usecase.Chart, error) {
	c.current = &chart
	return &textChart{owner: c, bars: c.current}, nil
}

func (t *textChart) Destroy() {
	if t.owner.current == t.bars {
		t.owner.current = nil
	}
}

// Flush writes the bound chart to w. Nothing is written when no chart is bound.
func (c *Chart) Flush(w io.Writer) error {
	if c.current == nil || len(c.current.Data.Datasets) == 0 {
		return nil
	}
	dataset := c.current.Data.Datasets[0]
	if _, err := fmt.Fprintf(w, "\n%s\n", dataset.Label); err != nil {
		return fmt.Errorf("failed to write chart title: %w", err)
	}
	for i, label := range c.current.Data.Labels {
		value := dataset.Data[i]
		if _, err := fmt.Fprintf(w, "%s | %s %d\n", label, barColor(strings.Repeat(barRune, value)), value); err != nil {
			return fmt.Errorf("failed to write bar for %s: %w", label, err)
		}
	}
	return nil
}
