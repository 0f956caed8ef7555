package gen

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"accessor-generator/internal/config"
	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/plan"
)

// ImplAttrs are placed on every generated implementation block.
var ImplAttrs = []string{"#[allow(dead_code)]", "#[allow(clippy::all)]"}

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Format selects source text or a descriptor export.
	Format Format
	// Extension is the file extension of rendered source files.
	Extension string
	// Header prepends a generated-code notice to rendered source files.
	Header bool
	// OutputDir is the directory generated files are written to.
	OutputDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Format:    FormatText,
		Extension: ".rs",
		Header:    true,
		OutputDir: "./generated",
	}
}

// Generator expands records into implementation blocks.
type Generator struct {
	config GeneratorConfig
	logger *slog.Logger
}

// NewGenerator creates a new Generator. A nil logger discards output.
func NewGenerator(config GeneratorConfig, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Generator{config: config, logger: logger}
}

// Result is the outcome of expanding one record.
type Result struct {
	Record string
	Impl   *Impl
	Err    error
}

// Expand generates the implementation block of r. Every field is
// processed even after a failure, and no block is returned unless the
// whole record resolved without error.
func (g *Generator) Expand(r *plan.Record) (*Impl, error) {
	if err := r.Kind.Unsupported(); err != nil {
		return nil, err.WithSpan(r.Span)
	}

	g.logger.Debug("expanding record", "record", r.Ident, "fields", len(r.Fields))

	options, err := plan.Resolve(r)
	if err != nil {
		return nil, err
	}

	var diag diagnostic.Diagnostics

	impl := &Impl{
		Record:    r.Ident,
		Generics:  r.Generics.Declaration(),
		Arguments: r.Generics.Arguments(),
		Where:     r.Generics.WhereClause(),
		Attrs:     append([]string(nil), ImplAttrs...),
	}

	for i := range r.Fields {
		field := &r.Fields[i]

		fo, err := options.WithField(field)
		if err != nil {
			diag.AddAt(err, field.Span)

			continue
		}

		if reason := SkipReason(fo); reason != "" {
			g.logger.Debug("skipping field", "record", r.Ident, "field", field.Ident, "reason", reason)

			continue
		}

		fns, err := Functions(fo)
		if err != nil {
			diag.AddAt(err, field.Span)

			continue
		}

		impl.Functions = append(impl.Functions, fns...)
	}

	if diag.HasErrors() {
		return nil, diag.Err()
	}

	g.logger.Debug("expanded record", "record", r.Ident, "functions", impl.Names())

	return impl, nil
}

// ExpandAll expands every record independently; a failing record never
// affects its siblings.
func (g *Generator) ExpandAll(records []plan.Record) []Result {
	out := make([]Result, len(records))

	for i := range records {
		impl, err := g.Expand(&records[i])
		out[i] = Result{Record: records[i].Ident, Impl: impl, Err: err}
	}

	return out
}

// GeneratedFile represents a generated output file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "user_profile_accessors.rs").
	Filename string
	// Content is the rendered or exported data.
	Content []byte
}

// Generate expands the records and renders one file per record that
// succeeded. Failing records are reported together in the returned error,
// next to the files of the others.
func (g *Generator) Generate(records []plan.Record) ([]GeneratedFile, error) {
	var (
		files []GeneratedFile
		errs  []error
	)

	for _, res := range g.ExpandAll(records) {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("record %s:\n%w", res.Record, res.Err))

			continue
		}

		file, err := g.file(res.Impl)
		if err != nil {
			errs = append(errs, fmt.Errorf("record %s: %w", res.Record, err))

			continue
		}

		files = append(files, file)
	}

	return files, errors.Join(errs...)
}

func (g *Generator) file(impl *Impl) (GeneratedFile, error) {
	base := snakeCase(config.Unraw(impl.Record)) + "_accessors"

	if g.config.Format == FormatText {
		content, err := RenderFile(impl, g.config.Header)
		if err != nil {
			return GeneratedFile{}, err
		}

		return GeneratedFile{Filename: base + g.config.Extension, Content: content}, nil
	}

	content, err := Export(impl, g.config.Format)
	if err != nil {
		return GeneratedFile{}, err
	}

	return GeneratedFile{Filename: base + g.config.Format.Extension(), Content: content}, nil
}

// snakeCase converts a record name such as `HTTPServer2Config` to
// `http_server2_config`.
func snakeCase(name string) string {
	runes := []rune(name)

	var b strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1])

			if prevLower || nextLower {
				b.WriteByte('_')
			}

			b.WriteRune(unicode.ToLower(r))

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
