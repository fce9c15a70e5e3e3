package cfmodels

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type ConflictPolicy int

const (
	ConflictPrompt ConflictPolicy = iota
	ConflictOverwrite
	ConflictSkip
)

func (p ConflictPolicy) String() string {
	switch p {
	case ConflictOverwrite:
		return "overwrite"
	case ConflictSkip:
		return "skip"
	default:
		return "prompt"
	}
}

func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "prompt":
		return ConflictPrompt, nil
	case "overwrite", "force":
		return ConflictOverwrite, nil
	case "skip":
		return ConflictSkip, nil
	}
	return ConflictPrompt, fmt.Errorf("unknown conflict policy %q (available: prompt, overwrite, skip)", s)
}

// Prompter asks the user a yes/no question.
type Prompter interface {
	Confirm(question string, defaultYes bool) (bool, error)
}

type consolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsolePrompter(in io.Reader, out io.Writer) Prompter {
	return &consolePrompter{in: bufio.NewReader(in), out: out}
}

func (p *consolePrompter) Confirm(question string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	for {
		fmt.Fprintf(p.out, "%s %s ", question, hint)
		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		if err != nil && answer == "" {
			// input closed
			fmt.Fprintln(p.out)
			return false, nil
		}
		switch answer {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if err != nil {
			fmt.Fprintln(p.out)
			return false, nil
		}
	}
}

type Generator struct {
	Language   Language
	Namespace  string
	OutputDir  string
	OnConflict ConflictPolicy
	// Prompter is required for ConflictPrompt; without one conflicting
	// files are skipped.
	Prompter Prompter
	Logger   *slog.Logger
}

type Result struct {
	Written []string
	Skipped []string
}

// Generate writes one file per content type. Files written before a failure
// are kept.
func (g *Generator) Generate(schema *Schema) (*Result, error) {
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}

	dir := g.OutputDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		logger.Info("output path does not exist and will be created", "path", dir)
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	res := &Result{
		Written: make([]string, 0),
		Skipped: make([]string, 0),
	}

	for _, ct := range schema.Types() {
		base := fileBaseName(ct)
		if base == "" {
			logger.Warn("content type has no usable name, skipping", "id", ct.id(), "name", ct.Name)
			continue
		}
		path := filepath.Join(dir, base+"."+g.Language.Extension())

		write, err := g.shouldWrite(path, logger)
		if err != nil {
			return res, err
		}
		if !write {
			logger.Warn("skipping file", "file", filepath.Base(path))
			res.Skipped = append(res.Skipped, path)
			continue
		}

		var buf bytes.Buffer
		if err := g.Language.Render(&buf, schema.NewClass(g.Namespace, ct)); err != nil {
			return res, fmt.Errorf("rendering %s: %w", ct.id(), err)
		}
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return res, fmt.Errorf("writing %s: %w", path, err)
		}
		logger.Debug("file written", "file", path)
		res.Written = append(res.Written, path)
	}

	return res, nil
}

func (g *Generator) shouldWrite(path string, logger *slog.Logger) (bool, error) {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	switch g.OnConflict {
	case ConflictOverwrite:
		return true, nil
	case ConflictSkip:
		return false, nil
	}

	if g.Prompter == nil {
		logger.Warn("file exists and no terminal is attached to confirm overwriting", "file", path)
		return false, nil
	}
	question := fmt.Sprintf("The folder already contains a file with the name %s. Do you want to overwrite it?", filepath.Base(path))
	return g.Prompter.Confirm(question, true)
}
