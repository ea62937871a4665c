package terminal

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/smokeytempo/timelinegen/internal/domain"
	"github.com/smokeytempo/timelinegen/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	repos []*domain.Repository
	err   error
}

func (f stubFetcher) FetchUserRepos(ctx context.Context, username string) ([]*domain.Repository, error) {
	return f.repos, f.err
}

func setup(t *testing.T, fetcher stubFetcher) (*usecase.Timeline, *Surface, *Chart, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	surface := NewSurface(out, errOut)
	chart := &Chart{}
	timeline := usecase.NewTimeline(fetcher, surface, chart, log.New(io.Discard, "", 0))
	return timeline, surface, chart, out, errOut
}

func sample() []*domain.Repository {
	return []*domain.Repository{
		domain.NewRepository("cli", time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), "command line", "Go"),
		domain.NewRepository("notes", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), "", ""),
		domain.NewRepository("site", time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC), "homepage", "HTML"),
	}
}

func TestSurface_Flush(t *testing.T) {
	timeline, surface, chart, out, errOut := setup(t, stubFetcher{repos: sample()})
	require.NoError(t, timeline.Generate(context.Background(), "octocat"))
	timeline.SelectLanguage("Go")

	require.NoError(t, surface.Flush())
	require.NoError(t, chart.Flush(out))

	text := out.String()
	assert.Empty(t, errOut.String())
	assert.Contains(t, text, "Languages: All Languages [Go] HTML")
	assert.Contains(t, text, "cli")
	assert.Contains(t, text, "Tue Jun 01 2021")
	assert.NotContains(t, text, "notes")
	assert.NotContains(t, text, "site")
	assert.Contains(t, text, "Number of Repos by Year")
	assert.Contains(t, text, "2020 | █ 1")
	assert.Contains(t, text, "2021 | ██ 2")
	assert.Less(t, strings.Index(text, "2020 |"), strings.Index(text, "2021 |"))
}

func TestSurface_FlushWarning(t *testing.T) {
	timeline, surface, chart, out, errOut := setup(t, stubFetcher{err: domain.ErrFetch})
	err := timeline.Generate(context.Background(), "octocat")
	assert.ErrorIs(t, err, domain.ErrFetch)

	require.NoError(t, surface.Flush())
	require.NoError(t, chart.Flush(out))

	assert.Contains(t, errOut.String(), domain.FetchErrorMessage)
	assert.Empty(t, out.String())
}

func TestChart_DestroyReleasesBinding(t *testing.T) {
	chart := &Chart{}
	first, err := chart.NewChart(domain.NewBarChart([]domain.YearCount{{Year: "2019", Count: 4}}))
	require.NoError(t, err)
	first.Destroy()

	out := &bytes.Buffer{}
	require.NoError(t, chart.Flush(out))
	assert.Empty(t, out.String())
}
