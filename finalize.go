// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/zip"
)

// ErrFinished rejects a second finalize of the same workbook.
var ErrFinished = errors.New("workbook already written")

// copyChunkSize is the block size used when staging the archive for a
// non-seekable sink.
const copyChunkSize = 4096

// packager turns the finalized document into the set of named part
// files under a working directory. The orchestrator only creates the
// package and enumerates the files it left behind.
type packager interface {
	CreatePackage(dir string) error
}

// Save finalizes the workbook into the named file.
func (wb *Workbook) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := wb.WriteTo(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// WriteTo finalizes the workbook and streams the archive to w. It runs
// the assembly passes in their fixed order, exactly once; afterwards
// the workbook is immutable and cannot be written again. When w can
// seek the archive is written straight into it, otherwise it is staged
// in a temporary file and copied over in fixed-size chunks.
func (wb *Workbook) WriteTo(w io.Writer) error {
	if wb.finished {
		return ErrFinished
	}
	wb.finished = true

	if len(wb.sheets) == 0 {
		if _, err := wb.AddWorksheet(""); err != nil {
			return err
		}
	}
	wb.ensureSelection()

	if err := wb.sst.materialize(); err != nil {
		return err
	}
	wb.prepareVML()
	wb.internStyles()
	wb.prepareDefinedNames()
	if err := wb.prepareDrawings(); err != nil {
		return err
	}
	wb.addChartData()

	dir, err := os.MkdirTemp(wb.tmpDir, "xlsxwriter")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	var p packager = &partWriter{wb: wb}
	if err := p.CreatePackage(dir); err != nil {
		return err
	}
	return wb.streamArchive(w, dir)
}

// ensureSelection guarantees exactly one selected sheet and a valid
// active sheet, defaulting to the first.
func (wb *Workbook) ensureSelection() {
	active := wb.shared.activeSheet
	if active < 0 || active >= len(wb.sheets) {
		active = 0
		wb.shared.activeSheet = 0
	}
	selected := false
	for _, ws := range wb.sheets {
		if ws.selected {
			selected = true
			break
		}
	}
	if !selected {
		wb.sheets[active].selected = true
	}
}

// prepareVML hands each commenting sheet its VML data and shape id
// block and appends nothing when no sheet comments exist. Shape id
// blocks advance by 1024 per started block of 1024 comments.
func (wb *Workbook) prepareVML() {
	commentID := 0
	vmlDataID := 1
	vmlShapeID := 1024
	for _, sheet := range wb.sheets {
		if len(sheet.comments) == 0 {
			continue
		}
		commentID++
		count := sheet.prepareComments(vmlDataID, vmlShapeID, commentID)
		blocks := (1024 + count) / 1024
		vmlDataID += blocks
		vmlShapeID += 1024 * blocks
	}
}

// prepareDrawings assigns monotonically increasing chart reference,
// image reference and drawing ids, in sheet order, charts before
// images within a sheet. Image files are read and sniffed here; a bad
// image aborts the finalize.
func (wb *Workbook) prepareDrawings() error {
	chartRefID := 0
	drawingID := 0
	for _, sheet := range wb.sheets {
		if !sheet.hasDrawing() {
			continue
		}
		drawingID++
		sheet.drawingID = drawingID
		for i := range sheet.charts {
			chartRefID++
			sheet.charts[i].chart.id = chartRefID
		}
		for i := range sheet.images {
			ref, err := wb.imageProperties(sheet.images[i].path)
			if err != nil {
				return err
			}
			sheet.images[i].ref = ref
		}
	}
	wb.log.Debug("prepared drawings", "drawings", drawingID, "charts", chartRefID, "images", len(wb.images))
	return nil
}

// streamArchive zips every file under dir into w, directly when w is
// seekable, through a staging file otherwise.
func (wb *Workbook) streamArchive(w io.Writer, dir string) error {
	if _, ok := w.(io.WriteSeeker); ok {
		return zipDir(w, dir)
	}
	staging, err := os.CreateTemp(wb.tmpDir, "xlsxwriter*.zip")
	if err != nil {
		return err
	}
	defer os.Remove(staging.Name())
	defer staging.Close()
	if err := zipDir(staging, dir); err != nil {
		return err
	}
	if _, err := staging.Seek(0, io.SeekStart); err != nil {
		return err
	}
	buf := make([]byte, copyChunkSize)
	if _, err := io.CopyBuffer(w, staging, buf); err != nil {
		return fmt.Errorf("copy archive: %w", err)
	}
	return nil
}

// zipDir writes all files under dir into a zip archive on w, paths
// slash-separated and relative to dir, in deterministic order.
func zipDir(w io.Writer, dir string) error {
	var names []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			names = append(names, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	sort.Strings(names)

	zw := zip.NewWriter(w)
	for _, name := range names {
		rel, err := filepath.Rel(dir, name)
		if err != nil {
			return err
		}
		entry, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		_, err = io.Copy(entry, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%q: %w", rel, err)
		}
	}
	return zw.Close()
}

// partPath joins part path segments with forward slashes.
func partPath(elem ...string) string { return strings.Join(elem, "/") }
