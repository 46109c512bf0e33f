// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

var EncName = "utf-8"

func init() {
	EncName = os.Getenv("LANG")
	if i := strings.IndexByte(EncName, '.'); i >= 0 {
		EncName = strings.ToLower(EncName[i+1:])
	}
	if EncName == "" {
		EncName = "utf-8"
	}
}

// GetEncoding resolves a charset name; UTF-8 and the empty name mean
// no transcoding (nil encoding).
func GetEncoding(encName string) (encoding.Encoding, error) {
	encName = strings.ToLower(encName)
	if encName == "" || encName == "utf-8" || encName == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(encName)
	if err != nil {
		err = fmt.Errorf("%q: %w", encName, err)
	}
	return enc, err
}

type csvReadCloser struct {
	*csv.Reader
	io.Closer
}

// OpenCSV opens a CSV file (stdin for "" or "-"), transcoding from the
// named charset and sniffing the separator from the first kilobyte:
// the first rune that is not a letter, number, quote or underscore.
func OpenCSV(fn, encName string) (csvReadCloser, error) {
	var enc encoding.Encoding
	if encName != "" {
		var err error
		if enc, err = GetEncoding(encName); err != nil {
			return csvReadCloser{}, err
		}
	}
	fh := os.Stdin
	if !(fn == "" || fn == "-") {
		var err error
		if fh, err = os.Open(fn); err != nil {
			return csvReadCloser{}, err
		}
	}
	r := io.ReadCloser(fh)
	if enc != nil {
		r = struct {
			io.Reader
			io.Closer
		}{enc.NewDecoder().Reader(r), r}
	}
	br := bufio.NewReaderSize(r, 1<<20)
	b, err := br.Peek(1024)
	if err != nil && len(b) == 0 {
		return csvReadCloser{}, err
	}
	sep := rune(',')
	for _, r := range string(b) {
		if r == '"' || r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) {
			continue
		}
		sep = r
		break
	}

	cr := csv.NewReader(br)
	cr.ReuseRecord = true
	cr.Comma = sep
	return csvReadCloser{cr, r}, nil
}

// ImportCSV copies one CSV stream into a new sheet of the stream
// writer. The first record becomes a bold header row; numeric-looking
// fields become number cells.
func ImportCSV(sw *StreamWriter, sheetName string, cr *csv.Reader) error {
	row, err := cr.Read()
	if err != nil {
		return err
	}
	cols := make([]Column, len(row))
	for i, r := range row {
		cols[i].Name = r
		cols[i].Header.FontBold = true
	}
	sheet, err := sw.NewSheet(sheetName, cols)
	if err != nil {
		return err
	}

	var rowI []any
	for {
		if row, err = cr.Read(); err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		rowI = rowI[:0]
		for _, s := range row {
			if _, perr := strconv.ParseFloat(s, 64); perr == nil && s != "" {
				rowI = append(rowI, Number(s))
			} else {
				rowI = append(rowI, s)
			}
		}
		if err = sheet.AppendRow(rowI...); err != nil {
			return err
		}
	}
	return sheet.Close()
}
