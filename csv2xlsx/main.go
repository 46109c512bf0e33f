// SPDX-License-Identifier: Apache-2.0

// Command csv2xlsx gathers CSV files into one xlsx workbook, one sheet
// per input. Sheet names default to the input file name and can be
// forced with a "name:file.csv" argument.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/peterbourgon/ff/v3/ffcli"

	xlsxwriter "github.com/maettu/excel-writer-xlsx"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		slog.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

func Main() error {
	fs := flag.NewFlagSet("csv2xlsx", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	flagEnc := fs.String("charset", xlsxwriter.EncName, "csv charset name")
	flagOut := fs.String("o", "", "output file name (default: first input + .xlsx)")

	app := ffcli.Command{Name: "csv2xlsx", FlagSet: fs,
		ShortUsage: "csv2xlsx [flags] [sheetname:]file.csv...",
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return flag.ErrHelp
			}
			out := *flagOut
			if out == "" {
				first := args[0]
				if i := strings.IndexByte(first, ':'); i >= 0 {
					first = first[i+1:]
				}
				if first == "" || first == "-" {
					out = "-"
				} else {
					out = strings.TrimSuffix(first, ".csv") + ".xlsx"
				}
			}
			fh := os.Stdout
			if out != "-" {
				var err error
				if fh, err = os.Create(out); err != nil {
					return err
				}
			}
			defer fh.Close()

			sw := xlsxwriter.NewWriter(fh, xlsxwriter.WithLogger(logger))
			for i, fn := range args {
				sheetName := fmt.Sprintf("Sheet%d", i+1)
				if j := strings.IndexByte(fn, ':'); j >= 0 {
					sheetName, fn = fn[:j], fn[j+1:]
				} else if fn != "" && fn != "-" {
					sheetName = strings.TrimSuffix(filepath.Base(fn), ".csv")
				}
				if err := copyFile(sw, sheetName, fn, *flagEnc); err != nil {
					return fmt.Errorf("%q: %w", fn, err)
				}
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			if err := sw.Close(); err != nil {
				return err
			}
			return fh.Close()
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.ParseAndRun(ctx, os.Args[1:])
}

func copyFile(sw *xlsxwriter.StreamWriter, sheetName, fn, encName string) error {
	cr, err := xlsxwriter.OpenCSV(fn, encName)
	if err != nil {
		return err
	}
	defer cr.Close()
	logger.Debug("import", "sheet", sheetName, "file", fn)
	return xlsxwriter.ImportCSV(sw, sheetName, cr.Reader)
}
