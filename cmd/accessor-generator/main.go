// Package main provides the CLI entrypoint for accessor-generator.
//
// accessor-generator reads record descriptions from YAML files and
// generates getter, setter, conversion and collection accessors for each
// record's fields:
//   - Attributes on records and fields configure which accessors exist
//   - Every configuration error is reported with its file location
//   - Output is source text, or a JSON, YAML or msgpack descriptor
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
