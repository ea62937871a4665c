package web

import (
	"errors"
	"sync"

	"github.com/smokeytempo/timelinegen/internal/domain"
	"github.com/smokeytempo/timelinegen/internal/usecase"
)

// ErrCanvasBusy is returned when a chart is created on a canvas that still holds one.
var ErrCanvasBusy = errors.New("canvas already holds a chart")

// Canvas is the chart drawing surface of the page. The browser draws whatever
// chart is bound to it with Chart.js.
type Canvas struct {
	mu      sync.RWMutex
	current *canvasChart
}

type canvasChart struct {
	canvas *Canvas
	config domain.BarChart
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// NewChart binds chart to the canvas.
func (c *Canvas) NewChart(chart domain.BarChart) (usecase.Chart, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil {
		return nil, ErrCanvasBusy
	}
	c.current = &canvasChart{canvas: c, config: chart}
	return c.current, nil
}

// Chart returns the bound chart configuration, or nil when the canvas is hidden.
func (c *Canvas) Chart() *domain.BarChart {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return nil
	}
	config := c.current.config
	return &config
}

// Destroy unbinds the chart. Destroying a chart that is no longer bound is a no-op.
func (ch *canvasChart) Destroy() {
	ch.canvas.mu.Lock()
	defer ch.canvas.mu.Unlock()
	if ch.canvas.current == ch {
		ch.canvas.current = nil
	}
}
