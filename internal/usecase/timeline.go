// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/smokeytempo/timelinegen/internal/domain"
	"github.com/smokeytempo/timelinegen/internal/gateway"
)

// Surface is the set of UI elements a timeline renders into.
type Surface interface {
	ShowWarning(msg string)
	RenderList(items []domain.ListItem)
	RenderFilter(options []domain.FilterOption, selected string, visible bool)
	ApplyTheme(dark bool)
}

// Chart is a drawn chart bound to a surface. Destroy releases it.
type Chart interface {
	Destroy()
}

// ChartClient draws charts. At most one chart created by a client is alive at a time.
type ChartClient interface {
	NewChart(chart domain.BarChart) (Chart, error)
}

// Timeline is the use case behind the "generate" action.
// It owns the application state and drives the surface and chart client.
type Timeline struct {
	fetcher gateway.Fetcher
	surface Surface
	charts  ChartClient
	logger  *log.Logger

	mu    sync.Mutex
	state domain.State
	chart Chart
}

// NewTimeline creates a new Timeline instance.
func NewTimeline(fetcher gateway.Fetcher, surface Surface, charts ChartClient, logger *log.Logger) *Timeline {
	return &Timeline{
		fetcher: fetcher,
		surface: surface,
		charts:  charts,
		logger:  logger,
	}
}

// Generate runs one generation cycle for rawUsername.
//
// Previous output is cleared first. Empty usernames are rejected without a
// network call. A fetch that completes after a newer Generate call has started
// is discarded and reported as nil. Failures are shown as inline warnings and
// also returned so callers can set exit codes.
func (t *Timeline) Generate(ctx context.Context, rawUsername string) error {
	username := strings.TrimSpace(rawUsername)

	t.mu.Lock()
	t.state.Generation++
	gen := t.state.Generation
	t.reset()
	t.state.Username = username
	if username == "" {
		t.warn(domain.EmptyUsernameMessage)
		t.mu.Unlock()
		return domain.ErrEmptyUsername
	}
	t.mu.Unlock()

	t.logger.Printf("Usecase: generation %d for %s started.", gen, username)
	repos, err := t.fetcher.FetchUserRepos(ctx, username)

	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.state.Generation {
		t.logger.Printf("Usecase: discarding stale generation %d.", gen)
		return nil
	}
	if err != nil {
		t.logger.Printf("Usecase: fetch failed: %v", err)
		t.warn(domain.FetchErrorMessage)
		if !errors.Is(err, domain.ErrFetch) {
			err = fmt.Errorf("%w: %w", domain.ErrFetch, err)
		}
		return err
	}
	if len(repos) == 0 {
		t.warn(domain.ZeroReposMessage(username))
		return nil
	}

	domain.SortByCreation(repos)
	t.state.Repos = repos

	t.surface.RenderList(domain.ListItems(repos))
	t.surface.RenderFilter(domain.LanguageOptions(repos), "", true)

	chart, err := t.charts.NewChart(domain.NewBarChart(domain.CountByYear(repos)))
	if err != nil {
		return fmt.Errorf("failed to draw chart: %w", err)
	}
	t.chart = chart

	t.logger.Printf("Usecase: generation %d rendered %d repositories.", gen, len(repos))
	return nil
}

// SelectLanguage re-renders the list restricted to lang. An empty lang selects all languages.
// The chart always reflects the full dataset and is left untouched.
func (t *Timeline) SelectLanguage(lang string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.Language = lang
	if len(t.state.Repos) == 0 {
		return
	}
	t.surface.RenderList(domain.ListItems(t.state.Visible()))
	t.surface.RenderFilter(domain.LanguageOptions(t.state.Repos), lang, true)
}

// ToggleTheme flips dark mode and returns the new value.
func (t *Timeline) ToggleTheme() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.DarkMode = !t.state.DarkMode
	t.surface.ApplyTheme(t.state.DarkMode)
	return t.state.DarkMode
}

// State returns a copy of the current application state.
func (t *Timeline) State() domain.State {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.state
	s.Repos = append([]*domain.Repository(nil), t.state.Repos...)
	return s
}

// reset clears everything a previous cycle rendered. Callers must hold t.mu.
func (t *Timeline) reset() {
	if t.chart != nil {
		t.chart.Destroy()
		t.chart = nil
	}
	t.state.Repos = nil
	t.state.Language = ""
	t.state.Warning = ""
	t.surface.ShowWarning("")
	t.surface.RenderList(nil)
	t.surface.RenderFilter(domain.LanguageOptions(nil), "", false)
}

func (t *Timeline) warn(msg string) {
	t.state.Warning = msg
	t.surface.ShowWarning(msg)
}
