package domain

// State is the whole application state of one timeline session.
// Renderers consume it; only the controller mutates it.
type State struct {
	Username   string        `json:"username"`
	Repos      []*Repository `json:"repos"`
	Language   string        `json:"language"`
	DarkMode   bool          `json:"dark_mode"`
	Warning    string        `json:"warning,omitempty"`
	Generation uint64        `json:"generation"`
}

// Visible returns the repos that pass the current filter selection.
func (s State) Visible() []*Repository {
	return FilterByLanguage(s.Repos, s.Language)
}
