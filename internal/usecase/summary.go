package usecase

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/smokeytempo/timelinegen/internal/domain"
)

// Summary condenses the current dataset into a few headline numbers.
type Summary struct {
	TotalRepos     int     `json:"total_repos"`
	Languages      int     `json:"languages"`
	BusiestYear    string  `json:"busiest_year,omitempty"`
	MeanPerYear    float64 `json:"mean_per_year"`
	MedianPerYear  float64 `json:"median_per_year"`
	YearsWithRepos int     `json:"years_with_repos"`
}

// Summarize computes a Summary over repos. It ignores the language filter.
func Summarize(repos []*domain.Repository) (Summary, error) {
	summary := Summary{
		TotalRepos: len(repos),
		// Drop the "All Languages" entry.
		Languages: len(domain.LanguageOptions(repos)) - 1,
	}
	counts := domain.CountByYear(repos)
	if len(counts) == 0 {
		return summary, nil
	}
	summary.YearsWithRepos = len(counts)

	perYear := make([]int, 0, len(counts))
	busiest := counts[0]
	for _, c := range counts {
		perYear = append(perYear, c.Count)
		if c.Count > busiest.Count {
			busiest = c
		}
	}
	summary.BusiestYear = busiest.Year

	data := stats.LoadRawData(perYear)
	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to calculate mean repos per year: %w", err)
	}
	median, err := stats.Median(data)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to calculate median repos per year: %w", err)
	}
	summary.MeanPerYear, err = stats.Round(mean, 2)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to round mean repos per year: %w", err)
	}
	summary.MedianPerYear = median
	return summary, nil
}

// Summary summarizes the dataset of the most recent generation.
func (t *Timeline) Summary() (Summary, error) {
	return Summarize(t.State().Repos)
}
