// SPDX-License-Identifier: Apache-2.0

// Package xlsxwriter builds xlsx spreadsheet documents from an
// in-memory model: worksheets, cell formats, charts, images and defined
// names. All user-facing mutation happens first; a single finalize run
// then interns style resources, materializes the shared string table,
// resolves names and chart data, and streams the zip package.
package xlsxwriter

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// ErrSheetName rejects a worksheet name that is too long, contains a
// forbidden character, or collides case-insensitively with an existing
// sheet.
var ErrSheetName = errors.New("invalid sheet name")

const sheetNameMaxLen = 31

const forbiddenSheetChars = `[]:*?/\`

// DocProperties are the document summary fields.
type DocProperties struct {
	Title    string
	Subject  string
	Author   string
	Manager  string
	Company  string
	Category string
	Keywords string
	Comments string
	Status   string
	Created  time.Time
}

// sheetShared is the workbook-owned state every sheet reaches by
// handle: string table and workbook-scoped view counters. Sheets never
// hold the workbook itself.
type sheetShared struct {
	sst         *sharedStrings
	activeSheet int
	firstSheet  int
	date1904    bool
}

// Workbook owns the whole document model. It is not safe for
// concurrent use; build it, then finalize it exactly once with Save or
// WriteTo.
type Workbook struct {
	log    *slog.Logger
	tmpDir string

	sheets       []*Worksheet
	formats      []*Format
	charts       []*Chart
	definedNames []definedName
	namedRanges  []string

	sst    *sharedStrings
	shared *sheetShared

	images     []*imageRef
	imageCache map[string]*imageRef

	props    DocProperties
	palette  []Color
	finished bool
}

// Option configures a Workbook at construction time.
type Option func(*Workbook)

// WithLogger sets the logger used by the finalize passes.
func WithLogger(log *slog.Logger) Option {
	return func(wb *Workbook) {
		if log != nil {
			wb.log = log
		}
	}
}

// WithTempDir overrides the directory used for the packaging working
// directory and, for non-seekable sinks, the archive staging file.
func WithTempDir(dir string) Option {
	return func(wb *Workbook) { wb.tmpDir = dir }
}

// WithDate1904 switches the date epoch from 1900 to 1904.
func WithDate1904() Option {
	return func(wb *Workbook) { wb.shared.date1904 = true }
}

// New creates an empty workbook. Format index 0 is the default cell
// format.
func New(opts ...Option) *Workbook {
	sst := newSharedStrings()
	wb := &Workbook{
		log:        slog.Default(),
		sst:        sst,
		shared:     &sheetShared{sst: sst},
		imageCache: make(map[string]*imageRef),
		palette:    defaultPalette(),
	}
	wb.addFormatRecord(defaultFormat())
	for _, o := range opts {
		o(wb)
	}
	return wb
}

// SetProperties sets the document summary fields.
func (wb *Workbook) SetProperties(p DocProperties) { wb.props = p }

// checkSheetName enforces the fatal sheet name rules.
func (wb *Workbook) checkSheetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrSheetName)
	}
	if len([]rune(name)) > sheetNameMaxLen {
		return fmt.Errorf("%w: %q exceeds %d characters", ErrSheetName, name, sheetNameMaxLen)
	}
	if i := strings.IndexAny(name, forbiddenSheetChars); i >= 0 {
		return fmt.Errorf("%w: %q contains %q", ErrSheetName, name, name[i])
	}
	for _, sheet := range wb.sheets {
		if strings.EqualFold(sheet.name, name) {
			return fmt.Errorf("%w: %q already in use", ErrSheetName, name)
		}
	}
	return nil
}

// AddWorksheet appends a worksheet. An empty name gets the next
// default "SheetN" name.
func (wb *Workbook) AddWorksheet(name string) (*Worksheet, error) {
	if name == "" {
		name = fmt.Sprintf("Sheet%d", len(wb.sheets)+1)
	}
	if err := wb.checkSheetName(name); err != nil {
		return nil, err
	}
	ws := &Worksheet{
		name:   name,
		index:  len(wb.sheets),
		shared: wb.shared,
		rows:   make(map[int]map[int]cell),
	}
	wb.sheets = append(wb.sheets, ws)
	return ws, nil
}

func (wb *Workbook) sheetByName(name string) *Worksheet {
	for _, ws := range wb.sheets {
		if ws.name == name {
			return ws
		}
	}
	return nil
}

func (wb *Workbook) addFormatRecord(f *Format) *Format {
	f.xfIndex = len(wb.formats)
	wb.formats = append(wb.formats, f)
	return f
}

// AddFormat creates a new cell format in creation order. The returned
// format is mutable until finalize.
func (wb *Workbook) AddFormat() *Format {
	f := defaultFormat()
	return wb.addFormatRecord(f)
}

// AddChart creates a chart of the given kind, failing for an
// unrecognized tag. Insert it into a worksheet with InsertChart.
func (wb *Workbook) AddChart(kind ChartKind) (*Chart, error) {
	c, err := newChart(kind)
	if err != nil {
		return nil, err
	}
	c.palette = wb.palette
	wb.charts = append(wb.charts, c)
	return c, nil
}

// NamedRanges returns the derived "Sheet!Name" view. Populated during
// finalize; exposed for the document summary part.
func (wb *Workbook) NamedRanges() []string { return wb.namedRanges }

// defaultPalette is the series color cycle handed to charts.
func defaultPalette() []Color {
	return []Color{
		0x4472C4, 0xED7D31, 0xA5A5A5, 0xFFC000,
		0x5B9BD5, 0x70AD47, 0x264478, 0x9E480E,
	}
}
