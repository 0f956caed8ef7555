package main

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"strings"

	"accessor-generator/internal/gen"
)

// Flags contains the command line options.
type Flags struct {
	Out     string
	Format  string
	Ext     string
	Header  bool
	Workers int
	Watch   bool
	Debug   bool
	Verbose bool
}

// setupFlags creates and configures the FlagSet.
// Returns the FlagSet and a Flags struct with bound flag variables.
func setupFlags(output io.Writer) (*flag.FlagSet, *Flags) {
	fs := flag.NewFlagSet("accessor-generator", flag.ContinueOnError)
	fs.SetOutput(output)

	defaults := gen.DefaultGeneratorConfig()
	flags := &Flags{}

	formats := make([]string, len(gen.Formats))
	for i, f := range gen.Formats {
		formats[i] = string(f)
	}

	fs.StringVar(&flags.Out, "out", "", "output directory; generated files are printed when empty")
	fs.StringVar(&flags.Format, "format", string(defaults.Format), "output format: "+strings.Join(formats, ", "))
	fs.StringVar(&flags.Ext, "ext", defaults.Extension, "file extension of generated source files")
	fs.BoolVar(&flags.Header, "header", defaults.Header, "prepend a generated-code notice to source files")
	fs.IntVar(&flags.Workers, "workers", runtime.GOMAXPROCS(0), "number of description files processed in parallel")
	fs.BoolVar(&flags.Watch, "watch", false, "regenerate when a description file changes (requires -out)")
	fs.BoolVar(&flags.Debug, "debug", false, "dump the resolved options of every record and field")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose logging")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: accessor-generator [flags] <description.yaml>...\n\n")
		fmt.Fprintf(out, "Generate accessors for the records described in YAML files.\n\n")
		fmt.Fprintf(out, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  accessor-generator records.yaml\n")
		fmt.Fprintf(out, "  accessor-generator -out ./generated -watch records.yaml\n")
		fmt.Fprintf(out, "  accessor-generator -format json -out ./descriptors a.yaml b.yaml\n")
		fmt.Fprintf(out, "\nExit Codes:\n")
		fmt.Fprintf(out, "  0    Generation successful\n")
		fmt.Fprintf(out, "  1    Configuration errors found or generation failed\n")
		fmt.Fprintf(out, "  2    Invalid command line\n")
	}

	return fs, flags
}

// config validates the flags and builds the generator configuration.
func (f *Flags) config() (gen.GeneratorConfig, error) {
	format, err := gen.ParseFormat(f.Format)
	if err != nil {
		return gen.GeneratorConfig{}, err
	}

	if f.Workers < 1 {
		return gen.GeneratorConfig{}, fmt.Errorf("-workers must be at least 1, got %d", f.Workers)
	}

	if f.Watch && f.Out == "" {
		return gen.GeneratorConfig{}, fmt.Errorf("-watch requires -out")
	}

	ext := f.Ext
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return gen.GeneratorConfig{
		Format:    format,
		Extension: ext,
		Header:    f.Header,
		OutputDir: f.Out,
	}, nil
}
