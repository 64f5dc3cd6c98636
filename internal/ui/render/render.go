// Package render prints dependency sets and lock status for the CLI.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/golock/internal/core/domain"
	"go.trai.ch/golock/internal/ui/output"
	"go.trai.ch/golock/internal/ui/style"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Format selects how a dependency set is printed.
type Format string

const (
	// FormatTable prints a bordered table.
	FormatTable Format = "table"
	// FormatYAML prints the lock notations as a YAML list.
	FormatYAML Format = "yaml"
	// FormatPlain prints one dependency name per line.
	FormatPlain Format = "plain"
)

// ErrUnknownFormat is returned for formats other than table, yaml and plain.
var ErrUnknownFormat = zerr.New("unknown output format")

// Row is the printable form of one dependency.
type Row struct {
	Name   string
	Kind   string
	Ref    string
	Source string
}

// RowOf describes dep by its variant.
func RowOf(dep domain.Dependency) Row {
	switch d := dep.(type) {
	case *domain.ModuleDependency:
		return Row{Name: d.Name(), Kind: "module", Ref: d.Version, Source: d.Source}
	case *domain.VcsDependency:
		ref := d.Commit
		if ref == "" {
			ref = d.Tag
		}
		return Row{Name: d.Name(), Kind: d.Vcs, Ref: ref, Source: d.URL}
	case *domain.LocalDependency:
		return Row{Name: d.Name(), Kind: "local", Source: d.Dir}
	default:
		return Row{Name: dep.Name()}
	}
}

// Dependencies writes set to w in the given format.
func Dependencies(w io.Writer, set *domain.DependencySet, format Format) error {
	switch format {
	case FormatTable, "":
		return writeTable(w, set)
	case FormatYAML:
		return writeYAML(w, set)
	case FormatPlain:
		for dep := range set.All() {
			if _, err := fmt.Fprintln(w, dep.Name()); err != nil {
				return err
			}
		}
		return nil
	default:
		return zerr.With(ErrUnknownFormat, "format", string(format))
	}
}

func writeTable(w io.Writer, set *domain.DependencySet) error {
	rows := make([][]string, 0, set.Len())
	for dep := range set.All() {
		r := RowOf(dep)
		rows = append(rows, []string{r.Name, r.Kind, r.Ref, r.Source})
	}

	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(output.ColorProfile())

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(style.Border.Renderer(renderer)).
		Headers("NAME", "KIND", "REF", "SOURCE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return style.Header.Renderer(renderer)
			case col == 1:
				return style.Muted.Renderer(renderer)
			default:
				return style.Cell.Renderer(renderer)
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func writeYAML(w io.Writer, set *domain.DependencySet) error {
	notations := make([]domain.Notation, 0, set.Len())
	for _, dep := range set.Lockable() {
		notations = append(notations, dep.ToLockNotation())
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(notations); err != nil {
		return zerr.Wrap(err, "failed to encode yaml")
	}
	return enc.Close()
}

// Status writes a one-line summary of report.
func Status(w io.Writer, report domain.StatusReport) error {
	out := output.New(w)

	var line string
	switch report.Status {
	case domain.StatusClean:
		line = output.Paint(out, style.Check+" clean", style.Green)
	case domain.StatusModified:
		line = output.Paint(out, style.Cross+" modified", style.Red)
	case domain.StatusUnlocked:
		line = output.Paint(out, style.Circle+" unlocked", style.Slate)
	case domain.StatusUntracked:
		line = output.Paint(out, style.Warning+" untracked", style.Yellow)
	default:
		line = string(report.Status)
	}

	line += " " + report.SettingsPath
	if report.Digest != "" {
		line += " digest=" + report.Digest
	}
	if report.Recorded != nil && report.Recorded.Digest != report.Digest {
		line += " recorded=" + report.Recorded.Digest
	}

	_, err := fmt.Fprintln(w, line)
	return err
}
