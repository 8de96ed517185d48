// Command gen-tables builds the flush lookup table and writes it to disk as
// a versioned blob (spec §4.2, §6), readable with tables.DecodeBlob. The
// rank table is not serialized: its perfect hash isn't stable across builds.
// Nothing in this module reads the blob; internal/tables.Load always builds
// both tables in-process.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/rangeequity/internal/fileutil"
	"github.com/lox/rangeequity/internal/tables"
)

type CLI struct {
	Out string `default:"tables.bin" help:"Output path for the serialized table blob"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli)

	logger := log.NewWithOptions(os.Stderr, log.Options{})

	t, err := tables.Load()
	if err != nil {
		logger.Fatal("building tables", "error", err)
	}

	blob := tables.EncodeBlob(t)
	if err := fileutil.WriteFileAtomic(cli.Out, blob, 0o644); err != nil {
		logger.Fatal("writing blob", "path", cli.Out, "error", err)
	}

	fmt.Printf("wrote %d bytes to %s\n", len(blob), cli.Out)
	kctx.Exit(0)
}
