package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/sync/errgroup"

	"accessor-generator/internal/gen"
	"accessor-generator/internal/mapping"
	"accessor-generator/internal/plan"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var debugConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type app struct {
	flags     *Flags
	config    gen.GeneratorConfig
	generator *gen.Generator
	logger    *slog.Logger
	stdout    io.Writer
	stderr    io.Writer
}

// fileResult is the outcome of processing one description file.
type fileResult struct {
	files []gen.GeneratedFile
	err   error
	debug []byte
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs, flags := setupFlags(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	if fs.NArg() == 0 {
		fs.Usage()
		fmt.Fprintln(stderr, "error: at least one description file is required")

		return exitUsage
	}

	config, err := flags.config()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)

		return exitUsage
	}

	level := slog.LevelWarn
	if flags.Verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	a := &app{
		flags:     flags,
		config:    config,
		generator: gen.NewGenerator(config, logger),
		logger:    logger,
		stdout:    stdout,
		stderr:    stderr,
	}

	ok := a.generate(ctx, fs.Args())

	if flags.Watch {
		if err := a.watch(ctx, fs.Args()); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)

			return exitError
		}

		return exitOK
	}

	if !ok {
		return exitError
	}

	return exitOK
}

// generate processes the description files in parallel and emits their
// results in argument order. It reports whether every file succeeded.
func (a *app) generate(ctx context.Context, paths []string) bool {
	results := make([]fileResult, len(paths))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(a.flags.Workers)

	for i, path := range paths {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				results[i] = a.process(path)

				return nil
			}
		})
	}

	if err := eg.Wait(); err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", err)

		return false
	}

	ok := true

	for i, res := range results {
		if !a.emit(paths[i], res) {
			ok = false
		}
	}

	return ok
}

func (a *app) process(path string) fileResult {
	a.logger.Debug("loading description file", "file", path)

	records, loadErr := mapping.Load(path)

	var debug bytes.Buffer
	if a.flags.Debug {
		dump(&debug, records)
	}

	files, genErr := a.generator.Generate(records)

	return fileResult{
		files: files,
		err:   errors.Join(loadErr, genErr),
		debug: debug.Bytes(),
	}
}

// emit prints the errors of res and writes or prints its files.
func (a *app) emit(path string, res fileResult) bool {
	_, _ = a.stderr.Write(res.debug)

	ok := true

	if res.err != nil {
		fmt.Fprintf(a.stderr, "%s: generation failed:\n%v\n", path, res.err)

		ok = false
	}

	if a.config.OutputDir == "" {
		for _, f := range res.files {
			if _, err := a.stdout.Write(f.Content); err != nil {
				fmt.Fprintf(a.stderr, "error: writing %s: %v\n", f.Filename, err)

				return false
			}
		}

		return ok
	}

	written, err := gen.WriteFiles(res.files, a.config.OutputDir)
	for _, w := range written {
		a.logger.Info("wrote file", "path", w)
	}

	if err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", err)

		return false
	}

	a.logger.Debug("generated", "file", path, "outputs", len(res.files), "changed", len(written))

	return ok
}

// dump writes the resolved options of every record and field. Records that
// fail to resolve are left to the generator to report.
func dump(w io.Writer, records []plan.Record) {
	for i := range records {
		r := &records[i]

		options, err := plan.Resolve(r)
		if err != nil {
			continue
		}

		fmt.Fprintf(w, "record %s:\n", r.Ident)
		debugConfig.Fdump(w, options.Attributes, options.Rename, options.Visibility, options.Verify)

		for j := range r.Fields {
			fo, err := options.WithField(&r.Fields[j])
			if err != nil {
				continue
			}

			fmt.Fprintf(w, "field %s.%s:\n", r.Ident, r.Fields[j].Ident)
			debugConfig.Fdump(w, fo.Attributes, fo.Rename, fo.Visibility, fo.Verify, fo.Forward.Entries())
		}
	}
}
