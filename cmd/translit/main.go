// translit converts Cyrillic text to Latin and back. Inputs are files
// given as arguments, or stdin when there are none.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/joho/godotenv"
	"github.com/jusunglee/cyrtranslit/internal/logger"
	"github.com/jusunglee/cyrtranslit/internal/textio"
	"github.com/jusunglee/cyrtranslit/internal/transliteration"
	"github.com/jusunglee/cyrtranslit/internal/tui"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/samber/lo"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()
	log := logger.Init()

	fs := ff.NewFlagSet("translit")

	// first value is the default
	ids := lo.Without(transliteration.IDs(), string(transliteration.GOST779bRU))
	ids = append([]string{string(transliteration.GOST779bRU)}, ids...)

	var (
		standard    = fs.StringEnumLong("standard", "transliteration standard", ids...)
		fromLatin   = fs.BoolLong("from-latin", "convert Latin back to Cyrillic")
		output      = fs.StringLong("output", "", "output file for a single input (default stdout)")
		outputDir   = fs.StringLong("output-dir", "", "output directory, required for more than one input")
		parallel    = fs.IntLong("parallel", 4, "files converted concurrently in batch mode")
		nfc         = fs.BoolLong("nfc", "normalize input to NFC before converting")
		stripStress = fs.BoolLong("strip-stress", "remove combining stress accents")
		list        = fs.BoolLong("list", "print the available standards and exit")
		interactive = fs.BoolLong("interactive", "convert as you type")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("TRANSLIT")); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if *list {
		fmt.Println(standardsTable(transliteration.Standards()))
		return nil
	}

	std, err := transliteration.ParseStandard(*standard)
	if err != nil {
		return err
	}

	if *interactive {
		return tui.Run(std)
	}

	tr, err := transliteration.New(std)
	if err != nil {
		return err
	}
	if *fromLatin && !tr.Reversible() {
		return fmt.Errorf("%w: %s converts to Latin only", transliteration.ErrUnsupportedDirection, std)
	}
	convert := func(text string) (string, error) {
		return tr.Convert(text, !*fromLatin)
	}
	opts := textio.Options{NFC: *nfc, StripStress: *stripStress}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := fs.GetArgs()
	if len(args) > 1 || (len(args) == 1 && *outputDir != "") {
		if *outputDir == "" {
			return errors.New("output-dir is required with more than one input")
		}
		if *output != "" {
			return errors.New("output cannot be combined with output-dir")
		}
		if err := os.MkdirAll(*outputDir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
		jobs, err := textio.PlanJobs(args, *outputDir)
		if err != nil {
			return err
		}
		log.Info("converting files", "count", len(jobs), "standard", std, "parallel", *parallel)
		return textio.ConvertFiles(ctx, jobs, opts, convert, *parallel)
	}

	in := ""
	if len(args) == 1 {
		in = args[0]
	}
	text, err := textio.ReadInput(in, os.Stdin)
	if err != nil {
		return err
	}
	if text, err = textio.Prepare(text, opts); err != nil {
		return err
	}
	result, err := convert(text)
	if err != nil {
		return err
	}

	if *output == "" {
		return writeOutput(os.Stdout, result)
	}
	return writeFile(*output, result)
}

func writeOutput(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// writeFile writes s to path, including any error from Close.
func writeFile(path, s string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := writeOutput(f, s); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}

func standardsTable(infos []transliteration.Info) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("62"))).
		Headers("ID", "LANGUAGE", "REVERSIBLE", "DESCRIPTION").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, info := range infos {
		t.Row(string(info.ID), info.Language, strconv.FormatBool(info.Reversible), info.Description)
	}
	return t.String()
}
