package domain

import (
	"sort"
	"strconv"
)

// YearCount is the number of repositories created in one calendar year.
type YearCount struct {
	Year  string `json:"year"`
	Count int    `json:"count"`
}

// CountByYear groups repos by the four-digit year of CreatedAt.
// The result is sorted ascending by year.
func CountByYear(repos []*Repository) []YearCount {
	counts := make(map[string]int)
	for _, repo := range repos {
		counts[strconv.Itoa(repo.CreatedAt.Year())]++
	}

	years := make([]string, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Strings(years)

	result := make([]YearCount, 0, len(years))
	for _, year := range years {
		result = append(result, YearCount{Year: year, Count: counts[year]})
	}
	return result
}

// BarChart describes a bar chart in the shape the Chart.js constructor expects.
type BarChart struct {
	Type    string       `json:"type"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

// ChartData holds the axis labels and the datasets drawn against them.
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ChartDataset is one series of bars with its styling.
type ChartDataset struct {
	Label           string `json:"label"`
	Data            []int  `json:"data"`
	BackgroundColor string `json:"backgroundColor"`
	BorderColor     string `json:"borderColor"`
	BorderWidth     int    `json:"borderWidth"`
}

// ChartOptions are the chart-wide rendering options.
type ChartOptions struct {
	Responsive bool        `json:"responsive"`
	Scales     ChartScales `json:"scales"`
}

// ChartScales configures the chart axes.
type ChartScales struct {
	Y ChartAxis `json:"y"`
}

// ChartAxis configures a single axis.
type ChartAxis struct {
	BeginAtZero bool `json:"beginAtZero"`
}

// NewBarChart builds the per-year repository chart. The y-axis always starts at zero.
func NewBarChart(counts []YearCount) BarChart {
	labels := make([]string, 0, len(counts))
	values := make([]int, 0, len(counts))
	for _, c := range counts {
		labels = append(labels, c.Year)
		values = append(values, c.Count)
	}
	return BarChart{
		Type: "bar",
		Data: ChartData{
			Labels: labels,
			Datasets: []ChartDataset{{
				Label:           "Number of Repos by Year",
				Data:            values,
				BackgroundColor: "rgba(75, 192, 192, 0.2)",
				BorderColor:     "rgba(75, 192, 192, 1)",
				BorderWidth:     1,
			}},
		},
		Options: ChartOptions{
			Responsive: true,
			Scales:     ChartScales{Y: ChartAxis{BeginAtZero: true}},
		},
	}
}
