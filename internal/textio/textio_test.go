package textio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("привет"), 0o644))

	got, err := ReadInput(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "привет", got)

	got, err = ReadInput("", strings.NewReader("из stdin"))
	require.NoError(t, err)
	assert.Equal(t, "из stdin", got)

	got, err = ReadInput("-", strings.NewReader("dash"))
	require.NoError(t, err)
	assert.Equal(t, "dash", got)

	_, err = ReadInput(filepath.Join(dir, "missing.txt"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "\u0439", Normalize("\u0438\u0306"))
	assert.Equal(t, "\u041a\u0438\u0457\u0432", Normalize("\u041a\u0438\u0456\u0308\u0432"))
	assert.Equal(t, "plain", Normalize("plain"))
}

func TestStripStress(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"acute", "молоко\u0301", "молоко"},
		{"grave", "до\u0300ма", "дома"},
		{"keeps breve", "мо\u0439", "мо\u0439"},
		{"keeps diaeresis", "\u0451лка", "\u0451лка"},
		{"decomposed breve survives", "\u0438\u0306", "\u0439"},
		{"stress on capital", "\u0410\u0301нна", "Анна"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StripStress(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrepare(t *testing.T) {
	got, err := Prepare("за\u0301мок", Options{StripStress: true})
	require.NoError(t, err)
	assert.Equal(t, "замок", got)

	got, err = Prepare("\u0438\u0306", Options{NFC: true})
	require.NoError(t, err)
	assert.Equal(t, "\u0439", got)

	got, err = Prepare("\u0438\u0306", Options{})
	require.NoError(t, err)
	assert.Equal(t, "\u0438\u0306", got)
}

func TestPlanJobs(t *testing.T) {
	jobs, err := PlanJobs([]string{"a/one.txt", "b/two.txt"}, "out")
	require.NoError(t, err)
	assert.Equal(t, []Job{
		{Input: "a/one.txt", Output: filepath.Join("out", "one.txt")},
		{Input: "b/two.txt", Output: filepath.Join("out", "two.txt")},
	}, jobs)

	_, err = PlanJobs([]string{"a/same.txt", "b/same.txt"}, "out")
	assert.Error(t, err)
}

func TestPlanJobsRejectsStdin(t *testing.T) {
	for _, inputs := range [][]string{{"-"}, {"a.txt", "-"}, {""}} {
		jobs, err := PlanJobs(inputs, t.TempDir())
		assert.ErrorIs(t, err, ErrStdinInBatch, "inputs %q", inputs)
		assert.Nil(t, jobs)
	}
}

func TestConvertFilesWithStdinNameFailsCleanly(t *testing.T) {
	outDir := t.TempDir()
	jobs := []Job{{Input: "-", Output: filepath.Join(outDir, "out.txt")}}

	err := ConvertFiles(context.Background(), jobs, Options{}, func(s string) (string, error) {
		return s, nil
	}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConvertFiles(t *testing.T) {
	inDir, outDir := t.TempDir(), t.TempDir()
	var inputs []string
	for _, name := range []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"} {
		path := filepath.Join(inDir, name)
		require.NoError(t, os.WriteFile(path, []byte("text "+name), 0o644))
		inputs = append(inputs, path)
	}
	jobs, err := PlanJobs(inputs, outDir)
	require.NoError(t, err)

	var calls atomic.Int32
	err = ConvertFiles(context.Background(), jobs, Options{}, func(s string) (string, error) {
		calls.Add(1)
		return strings.ToUpper(s), nil
	}, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(5), calls.Load())

	for _, job := range jobs {
		b, err := os.ReadFile(job.Output)
		require.NoError(t, err)
		assert.Equal(t, strings.ToUpper("text "+filepath.Base(job.Input)), string(b))
	}
}

func TestConvertFilesStopsOnError(t *testing.T) {
	inDir, outDir := t.TempDir(), t.TempDir()
	path := filepath.Join(inDir, "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	boom := errors.New("boom")
	jobs := []Job{
		{Input: path, Output: filepath.Join(outDir, "bad.txt")},
		{Input: filepath.Join(inDir, "missing.txt"), Output: filepath.Join(outDir, "missing.txt")},
	}
	err := ConvertFiles(context.Background(), jobs, Options{}, func(string) (string, error) {
		return "", boom
	}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	_, statErr := os.Stat(filepath.Join(outDir, "bad.txt"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestConvertFilesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ConvertFiles(ctx, []Job{{Input: "unused", Output: "unused"}}, Options{}, func(s string) (string, error) {
		return s, nil
	}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
