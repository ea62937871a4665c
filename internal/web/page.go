// Package web serves the timeline as a server-rendered HTML page.
package web

import (
	"sync"

	"github.com/smokeytempo/timelinegen/internal/domain"
)

// Page is the usecase.Surface of the web UI. It keeps what the next
// page render should show.
type Page struct {
	mu   sync.RWMutex
	view PageView
}

// PageView is a snapshot of every element on the page.
type PageView struct {
	Warning       string                `json:"warning"`
	Items         []domain.ListItem     `json:"items"`
	Options       []domain.FilterOption `json:"options"`
	Selected      string                `json:"selected"`
	FilterVisible bool                  `json:"filter_visible"`
	DarkMode      bool                  `json:"dark_mode"`
}

// NewPage returns an empty page with only the "All Languages" option.
func NewPage() *Page {
	return &Page{view: PageView{Options: domain.LanguageOptions(nil)}}
}

func (p *Page) ShowWarning(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.Warning = msg
}

func (p *Page) RenderList(items []domain.ListItem) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.Items = items
}

func (p *Page) RenderFilter(options []domain.FilterOption, selected string, visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.Options = options
	p.view.Selected = selected
	p.view.FilterVisible = visible
}

func (p *Page) ApplyTheme(dark bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.DarkMode = dark
}

// Snapshot returns a copy of the current view.
func (p *Page) Snapshot() PageView {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v := p.view
	v.Items = append([]domain.ListItem(nil), p.view.Items...)
	v.Options = append([]domain.FilterOption(nil), p.view.Options...)
	return v
}
