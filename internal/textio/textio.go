// Package textio handles the file side of the command-line converter:
// reading inputs, optional Unicode clean-up, and converting batches of
// files concurrently.
package textio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combining grave and acute, the marks dictionaries use for stress
var stressMarks = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x0301, Stride: 1}},
}

// ReadInput reads path, or stdin when path is "" or "-".
func ReadInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(b), nil
}

// Normalize returns s in NFC, so decomposed letters like и + U+0306
// become й before table lookup.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// StripStress removes combining stress accents and recomposes the rest.
// Letters whose diacritic is part of the letter (й, ё, ї) are kept.
func StripStress(s string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(stressMarks)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return "", fmt.Errorf("stripping stress marks: %w", err)
	}
	return out, nil
}

// Options selects the clean-up applied before conversion.
type Options struct {
	NFC         bool
	StripStress bool
}

// Prepare applies the clean-up steps selected in opts.
func Prepare(s string, opts Options) (string, error) {
	if opts.StripStress {
		var err error
		if s, err = StripStress(s); err != nil {
			return "", err
		}
	}
	if opts.NFC {
		s = Normalize(s)
	}
	return s, nil
}

// Job is one input file and where its converted text goes.
type Job struct {
	Input  string
	Output string
}

// ErrStdinInBatch is returned when "-" is given as one of a batch of files.
var ErrStdinInBatch = errors.New("stdin cannot be part of a batch")

// PlanJobs maps each input to a file of the same name under outputDir.
func PlanJobs(inputs []string, outputDir string) ([]Job, error) {
	seen := make(map[string]string, len(inputs))
	jobs := make([]Job, 0, len(inputs))
	for _, in := range inputs {
		if in == "" || in == "-" {
			return nil, fmt.Errorf("%w: use a file path instead of %q", ErrStdinInBatch, in)
		}
		out := filepath.Join(outputDir, filepath.Base(in))
		if prev, ok := seen[out]; ok {
			return nil, fmt.Errorf("%s and %s would both write %s", prev, in, out)
		}
		seen[out] = in
		jobs = append(jobs, Job{Input: in, Output: out})
	}
	return jobs, nil
}

// ConvertFunc turns one document's text into its converted form.
type ConvertFunc func(text string) (string, error)

// ConvertFiles runs convert over every job with at most limit files in
// flight. The first failure cancels the jobs not yet started.
func ConvertFiles(ctx context.Context, jobs []Job, opts Options, convert ConvertFunc, limit int) error {
	if limit < 1 {
		limit = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return convertFile(job, opts, convert)
		})
	}
	return g.Wait()
}

func convertFile(job Job, opts Options, convert ConvertFunc) error {
	b, err := os.ReadFile(job.Input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", job.Input, err)
	}
	text := string(b)
	if text, err = Prepare(text, opts); err != nil {
		return fmt.Errorf("%s: %w", job.Input, err)
	}
	out, err := convert(text)
	if err != nil {
		return fmt.Errorf("converting %s: %w", job.Input, err)
	}
	if err := os.WriteFile(job.Output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", job.Output, err)
	}
	return nil
}
