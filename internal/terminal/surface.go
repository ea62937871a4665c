// Package terminal renders a timeline to a terminal: the repository list as
// a table and the yearly counts as text bars.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/smokeytempo/timelinegen/internal/domain"
)

var (
	warningPrefix = color.New(color.FgHiYellow).Sprint("⚠")
	bold          = color.New(color.Bold).SprintFunc()
	cyan          = color.New(color.FgHiCyan).SprintFunc()
	faint         = color.New(color.Faint).SprintFunc()
)

// Surface collects what a generation cycle renders and prints it on Flush.
type Surface struct {
	Out    io.Writer
	ErrOut io.Writer

	warning       string
	items         []domain.ListItem
	options       []domain.FilterOption
	selected      string
	filterVisible bool
}

// NewSurface creates a Surface writing the list to out and warnings to errOut.
func NewSurface(out, errOut io.Writer) *Surface {
	return &Surface{Out: out, ErrOut: errOut}
}

func (s *Surface) ShowWarning(msg string) { s.warning = msg }

func (s *Surface) RenderList(items []domain.ListItem) { s.items = items }

func (s *Surface) RenderFilter(options []domain.FilterOption, selected string, visible bool) {
	s.options = options
	s.selected = selected
	s.filterVisible = visible
}

// ApplyTheme is a no-op; terminals keep their own theme.
func (s *Surface) ApplyTheme(bool) {}

// Flush prints the warning, the language options and the repository table.
func (s *Surface) Flush() error {
	if s.warning != "" {
		fmt.Fprintf(s.ErrOut, "%s %s\n", warningPrefix, s.warning)
	}
	if !s.filterVisible {
		return nil
	}

	labels := make([]string, 0, len(s.options))
	for _, opt := range s.options {
		label := opt.Label
		if opt.Value == s.selected {
			label = cyan("[" + label + "]")
		}
		labels = append(labels, label)
	}
	fmt.Fprintf(s.Out, "Languages: %s\n\n", strings.Join(labels, " "))

	table := tablewriter.NewTable(s.Out,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: "", Right: "  "}),
	)
	table.Header([]string{"Name", "Created", "Language", "Description"})
	for _, item := range s.items {
		if err := table.Append([]string{bold(item.Name), item.Created, item.Language, faint(item.Description)}); err != nil {
			return fmt.Errorf("failed to append repository row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render repository table: %w", err)
	}
	return nil
}
