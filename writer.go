// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"
)

// SheetWriter appends rows to one sheet of a streaming write. It
// should be Closed when finished.
type SheetWriter interface {
	io.Closer
	AppendRow(values ...any) error
}

// Style is a style for a column/row/cell of a streaming write.
type Style struct {
	// Format is the number format
	Format string
	// FontBold is true if the font is bold
	FontBold bool
}

// Column contains the Name of the column and the header's and the
// column body's style.
type Column struct {
	Name           string
	Header, Column Style
}

var ErrTooManyRows = errors.New("too many rows")

// Number is a string that contains a number.
type Number string

// StreamWriter is the row-oriented facade over a Workbook: sheets are
// declared with a header row up front and rows are appended in order.
// The document is finalized when Close is called.
//
// Writes to separate sheets may happen from separate goroutines; they
// are serialized on one workbook lock.
type StreamWriter struct {
	w      io.Writer
	wb     *Workbook
	styles map[string]*Format
	mu     sync.Mutex
}

// NewWriter returns a StreamWriter that finalizes into w on Close.
//
// The writer collects everything in memory, so big sheets may impose
// problems.
func NewWriter(w io.Writer, opts ...Option) *StreamWriter {
	return &StreamWriter{w: w, wb: New(opts...)}
}

// Workbook exposes the underlying workbook for direct use (charts,
// images, named ranges) before Close.
func (sw *StreamWriter) Workbook() *Workbook { return sw.wb }

// Close finalizes the workbook into the writer given at creation.
func (sw *StreamWriter) Close() error {
	if sw == nil {
		return nil
	}
	sw.mu.Lock()
	defer sw.mu.Unlock()
	wb, w := sw.wb, sw.w
	sw.wb, sw.w = nil, nil
	if wb == nil || w == nil {
		return nil
	}
	return wb.WriteTo(w)
}

// NewSheet declares a sheet with its columns. Column names form a
// header row; empty names leave the sheet headerless.
func (sw *StreamWriter) NewSheet(name string, columns []Column) (SheetWriter, error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.wb == nil {
		return nil, ErrFinished
	}
	ws, err := sw.wb.AddWorksheet(name)
	if err != nil {
		return nil, err
	}
	var hasHeader bool
	sheet := &streamSheet{sw: sw, ws: ws}
	for i, c := range columns {
		if f := sw.getStyle(c.Column); f != nil {
			sheet.colStyles = append(sheet.colStyles, f)
		} else {
			sheet.colStyles = append(sheet.colStyles, nil)
		}
		if c.Name != "" {
			hasHeader = true
			if err := ws.WriteString(0, i, c.Name, sw.getStyle(c.Header)); err != nil {
				return nil, err
			}
		}
	}
	if hasHeader {
		sheet.row = 1
	}
	return sheet, nil
}

// getStyle interns a facade style as a workbook format. The zero style
// maps to nil, meaning the default cell format.
func (sw *StreamWriter) getStyle(style Style) *Format {
	if !style.FontBold && style.Format == "" {
		return nil
	}
	k := fmt.Sprintf("%t\t%s", style.FontBold, style.Format)
	if f, ok := sw.styles[k]; ok {
		return f
	}
	f := sw.wb.AddFormat()
	f.Bold = style.FontBold
	f.NumFormat = style.Format
	if sw.styles == nil {
		sw.styles = make(map[string]*Format)
	}
	sw.styles[k] = f
	return f
}

// MaxRowCount is the number of maximum rows.
const MaxRowCount = MaxRows

type streamSheet struct {
	sw        *StreamWriter
	ws        *Worksheet
	colStyles []*Format
	row       int
}

func (ss *streamSheet) Close() error { return nil }

func (ss *streamSheet) style(col int) *Format {
	if col < len(ss.colStyles) {
		return ss.colStyles[col]
	}
	return nil
}

// AppendRow writes the values as the next row. Nil values and zero
// times leave their cell empty; database null wrappers follow their
// Valid flag.
func (ss *streamSheet) AppendRow(values ...any) error {
	ss.sw.mu.Lock()
	defer ss.sw.mu.Unlock()
	if ss.sw.wb == nil {
		return ErrFinished
	}
	if ss.row >= MaxRowCount {
		return ErrTooManyRows
	}
	row := ss.row
	ss.row++
	for i, v := range values {
		if v == nil {
			continue
		}
		if vr, ok := v.(driver.Valuer); ok {
			if vv, err := vr.Value(); err == nil {
				v = vv
			}
		}
		if v == nil {
			continue
		}
		format := ss.style(i)
		var err error
		switch x := v.(type) {
		case time.Time:
			if !x.IsZero() {
				err = ss.ws.WriteString(row, i, x.Format("2006-01-02"), format)
			}
		case sql.NullTime:
			if x.Valid && !x.Time.IsZero() {
				err = ss.ws.WriteString(row, i, x.Time.Format("2006-01-02"), format)
			}
		case sql.NullFloat64:
			if x.Valid {
				err = ss.ws.WriteNumber(row, i, x.Float64, format)
			}
		case sql.NullInt64:
			if x.Valid {
				err = ss.ws.WriteNumber(row, i, float64(x.Int64), format)
			}
		case sql.NullString:
			if x.Valid {
				err = ss.ws.WriteString(row, i, x.String, format)
			}
		case bool:
			err = ss.ws.WriteBool(row, i, x, format)
		case int:
			err = ss.ws.WriteNumber(row, i, float64(x), format)
		case int32:
			err = ss.ws.WriteNumber(row, i, float64(x), format)
		case int64:
			err = ss.ws.WriteNumber(row, i, float64(x), format)
		case float32:
			err = ss.ws.WriteNumber(row, i, float64(x), format)
		case float64:
			err = ss.ws.WriteNumber(row, i, x, format)
		case Number:
			if n, perr := strconv.ParseFloat(string(x), 64); perr == nil {
				err = ss.ws.WriteNumber(row, i, n, format)
			} else {
				err = ss.ws.WriteString(row, i, string(x), format)
			}
		case string:
			err = ss.ws.WriteString(row, i, x, format)
		case fmt.Stringer:
			err = ss.ws.WriteString(row, i, x.String(), format)
		default:
			err = ss.ws.WriteString(row, i, fmt.Sprint(x), format)
		}
		if err != nil {
			return fmt.Errorf("%s[%s]: %w", ss.ws.Name(), cellRef(row, i), err)
		}
	}
	return nil
}
