package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/ukaji3/imgrename-go/pkg/imgrename"
	"github.com/ukaji3/imgrename-go/pkg/imgrename/models"
)

const (
	ansiReset = "\033[0m"
	ansiBlue  = "\033[1;94m"
)

func renderSummary(w io.Writer, report *imgrename.Report, limit int, colorize bool) {
	title := "Done"
	if report.DryRun {
		title = "Dry run"
	}

	lines := renderSectionHeader(title, colorize)
	lines = append(lines, renderCounts(report))
	lines = append(lines, renderList("Not found", report.NotFoundRows, limit)...)
	lines = append(lines, renderList("Skipped", report.SkippedRows, limit)...)

	if report.DryRun {
		lines = append(lines, "", "No files were changed in: "+report.ImagesDir)
	} else {
		lines = append(lines, "", "Images renamed in folder: "+report.ImagesDir)
	}

	fmt.Fprintln(w, strings.Join(lines, "\n"))
}

func renderCounts(report *imgrename.Report) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Outcome", "Rows"})
	tw.AppendRow(table.Row{"Renamed", strconv.Itoa(report.Renamed)})
	tw.AppendRow(table.Row{"Not found", strconv.Itoa(report.NotFound)})
	tw.AppendRow(table.Row{"Skipped", strconv.Itoa(report.Skipped)})
	tw.AppendFooter(table.Row{"Total", strconv.Itoa(report.Total())})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}

func renderList(title string, results []models.Result, limit int) []string {
	if len(results) == 0 {
		return nil
	}
	shown, hidden := imgrename.Truncate(results, limit)
	lines := []string{"", title + ":"}
	for _, res := range shown {
		lines = append(lines, "  - "+imgrename.Describe(res))
	}
	if hidden > 0 {
		lines = append(lines, fmt.Sprintf("  ... and %d more", hidden))
	}
	return lines
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", text.RuneWidthWithoutEscSequences(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func resolveColor(mode string, writer io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		return shouldColorize(writer), nil
	default:
		return false, fmt.Errorf("invalid color mode: %s (must be auto, always, or never)", mode)
	}
}

func shouldColorize(writer io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
