package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/ukaji3/imgrename-go/internal/logging"
	"github.com/ukaji3/imgrename-go/pkg/imgrename"
)

const defaultWorkbook = "Danh sach tham du hoi nghi.xlsx"

type cliFlags struct {
	opts      imgrename.Options
	listLimit int
	logLevel  string
	logFormat string
	colorMode string
}

func newRootCommand() *cobra.Command {
	flags := cliFlags{opts: imgrename.DefaultOptions()}

	rootCmd := &cobra.Command{
		Use:   "imgrename [workbook.xlsx|table.csv]",
		Short: "Rename images to the ids listed in a spreadsheet",
		Long: `imgrename reads a spreadsheet with an image-name column and an id column,
finds each named image in the images folder and renames it to <id>.jpeg.

Without a workbook argument "` + defaultWorkbook + `" is used.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &flags)
		},
	}

	f := rootCmd.Flags()
	f.StringVarP(&flags.opts.ImagesDir, "images", "d", flags.opts.ImagesDir, "Folder containing the images to rename")
	f.StringVar(&flags.opts.Sheet, "sheet", "", "Worksheet name (default: first sheet)")
	f.IntVar(&flags.opts.HeaderRow, "header-row", 0, "Row holding column names, 1-based (default: auto-detect)")
	f.StringVar(&flags.opts.Range, "range", "", "Only read cells in this range, e.g. A3:F500 or 'Sheet1'!A3:F500")
	f.StringVar(&flags.opts.ImageColumn, "image-column", "", "Column holding image names (default: resolve \"image\")")
	f.StringVar(&flags.opts.IDColumn, "id-column", "", "Column holding ids (default: resolve \"id\")")
	f.BoolVarP(&flags.opts.DryRun, "dry-run", "n", false, "Report what would be renamed without touching files")
	f.IntVar(&flags.listLimit, "list-limit", 10, "Entries shown per not-found/skipped list (0: all)")
	f.StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	f.StringVar(&flags.logFormat, "log-format", "console", "Log format: console, json")
	f.StringVar(&flags.colorMode, "color", "auto", "Color output: auto, always, never")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, flags *cliFlags) error {
	inputPath := defaultWorkbook
	if len(args) > 0 {
		inputPath = args[0]
	}

	if !logging.ValidLevel(flags.logLevel) {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", flags.logLevel)
	}
	colorize, err := resolveColor(flags.colorMode, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := flags.opts.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  flags.logLevel,
		Format: flags.logFormat,
		Writer: cmd.ErrOrStderr(),
		Color:  colorize && flags.logFormat != "json",
	})
	if err != nil {
		return err
	}
	logger = logger.With("run_id", uuid.NewString())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := imgrename.Process(ctx, inputPath, flags.opts, logger)
	if report != nil {
		renderSummary(cmd.OutOrStdout(), report, flags.listLimit, colorize)
	}
	return err
}
