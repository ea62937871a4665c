// Package domain contains the core data structures and domain logic for the application.
package domain

import (
	"sort"
	"time"
)

const (
	// NoDescription replaces a missing repository description.
	NoDescription = "No description provided."
	// NoLanguage is displayed for repositories without a primary language.
	NoLanguage = "N/A"
	// AllLanguagesLabel labels the filter option that disables filtering.
	AllLanguagesLabel = "All Languages"

	// listDateLayout renders dates in the weekday/month/day/year calendar form.
	listDateLayout = "Mon Jan 02 2006"
)

// Repository is the normalized form of a public repository returned by the listing API.
// It is the core domain entity of this application.
type Repository struct {
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	Description string    `json:"description"`
	Language    string    `json:"language,omitempty"`
}

// NewRepository builds a Repository, substituting the placeholder for an empty description.
func NewRepository(name string, createdAt time.Time, description, language string) *Repository {
	if description == "" {
		description = NoDescription
	}
	return &Repository{
		Name:        name,
		CreatedAt:   createdAt,
		Description: description,
		Language:    language,
	}
}

// ListItem is what a surface shows for a single repository.
type ListItem struct {
	Name        string `json:"name"`
	Created     string `json:"created"`
	Description string `json:"description"`
	Language    string `json:"language"`
}

// FilterOption is one entry of the language selector.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SortByCreation orders repos ascending by creation time. Ties keep their API order.
func SortByCreation(repos []*Repository) {
	sort.SliceStable(repos, func(i, j int) bool {
		return repos[i].CreatedAt.Before(repos[j].CreatedAt)
	})
}

// FilterByLanguage returns the repos whose language equals lang exactly.
// An empty lang means no filter and returns repos unchanged.
func FilterByLanguage(repos []*Repository, lang string) []*Repository {
	if lang == "" {
		return repos
	}
	filtered := make([]*Repository, 0, len(repos))
	for _, repo := range repos {
		if repo.Language == lang {
			filtered = append(filtered, repo)
		}
	}
	return filtered
}

// LanguageOptions returns the "All Languages" option followed by every
// distinct language in repos, in order of first appearance.
func LanguageOptions(repos []*Repository) []FilterOption {
	options := []FilterOption{{Value: "", Label: AllLanguagesLabel}}
	seen := make(map[string]bool)
	for _, repo := range repos {
		if repo.Language == "" || seen[repo.Language] {
			continue
		}
		seen[repo.Language] = true
		options = append(options, FilterOption{Value: repo.Language, Label: repo.Language})
	}
	return options
}

// ListItems converts repos into their display form, preserving order.
func ListItems(repos []*Repository) []ListItem {
	items := make([]ListItem, 0, len(repos))
	for _, repo := range repos {
		language := repo.Language
		if language == "" {
			language = NoLanguage
		}
		items = append(items, ListItem{
			Name:        repo.Name,
			Created:     repo.CreatedAt.Format(listDateLayout),
			Description: repo.Description,
			Language:    language,
		})
	}
	return items
}
