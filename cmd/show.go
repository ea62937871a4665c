package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/smokeytempo/timelinegen/internal/domain"
	"github.com/smokeytempo/timelinegen/internal/terminal"
	"github.com/smokeytempo/timelinegen/internal/usecase"
)

var showCmd = &cobra.Command{
	Use:   "show <username>",
	Short: "Print a user's repository timeline to the terminal",
	Long: `Fetches the first page of public repositories of <username>, prints them
oldest first, and draws the number of repositories created per year.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		language, _ := cmd.Flags().GetString("language")
		format, _ := cmd.Flags().GetString("output")
		if format != "table" && format != "json" {
			return fmt.Errorf("unsupported output format %q (want table or json)", format)
		}

		githubGateway, err := newGateway(logger)
		if err != nil {
			return err
		}
		surface := terminal.NewSurface(cmd.OutOrStdout(), cmd.ErrOrStderr())
		chart := &terminal.Chart{}
		timeline := usecase.NewTimeline(githubGateway, surface, chart, logger)

		genErr := timeline.Generate(cmd.Context(), args[0])
		if genErr == nil && language != "" {
			timeline.SelectLanguage(language)
		}

		if format == "json" {
			if err := writeTimelineJSON(cmd.OutOrStdout(), timeline); err != nil {
				return err
			}
		} else {
			if err := surface.Flush(); err != nil {
				return err
			}
			if err := chart.Flush(cmd.OutOrStdout()); err != nil {
				return err
			}
		}
		if errors.Is(genErr, domain.ErrFetch) || errors.Is(genErr, domain.ErrEmptyUsername) {
			// The inline warning is all the user sees; the cause only goes to the verbose log.
			logger.Printf("show: %v", genErr)
			cmd.SilenceErrors = true
		}
		return genErr
	},
}

type timelineJSON struct {
	Username string             `json:"username"`
	Warning  string             `json:"warning,omitempty"`
	Language string             `json:"language,omitempty"`
	Repos    []domain.ListItem  `json:"repos"`
	Years    []domain.YearCount `json:"years"`
	Summary  usecase.Summary    `json:"summary"`
}

func writeTimelineJSON(w io.Writer, timeline *usecase.Timeline) error {
	state := timeline.State()
	summary, err := usecase.Summarize(state.Repos)
	if err != nil {
		return err
	}
	jsonData, err := json.MarshalIndent(timelineJSON{
		Username: state.Username,
		Warning:  state.Warning,
		Language: state.Language,
		Repos:    domain.ListItems(state.Visible()),
		Years:    domain.CountByYear(state.Repos),
		Summary:  summary,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal timeline to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringP("language", "l", "", "Only list repositories with this primary language (case-sensitive)")
	showCmd.Flags().StringP("output", "o", "table", "Output format: table or json")
}
