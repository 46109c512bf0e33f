// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import (
	"bytes"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestStreamWriter(t *testing.T) {
	var buf bytes.Buffer
	sw := NewWriter(&buf, WithTempDir(t.TempDir()))

	sheet, err := sw.NewSheet("People", []Column{
		{Name: "Name", Header: Style{FontBold: true}},
		{Name: "Born", Column: Style{Format: "yyyy-mm-dd"}},
		{Name: "Score"},
	})
	require.NoError(t, err)

	require.NoError(t, sheet.AppendRow("Ada", time.Date(1815, 12, 10, 0, 0, 0, 0, time.UTC), 99.5))
	require.NoError(t, sheet.AppendRow("Nobody", nil, Number("12.25")))
	require.NoError(t, sheet.AppendRow(
		sql.NullString{String: "Grace", Valid: true},
		sql.NullTime{},
		sql.NullInt64{Int64: 7, Valid: true},
	))
	require.NoError(t, sheet.Close())
	require.NoError(t, sw.Close())

	xl, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer xl.Close()

	cases := []struct {
		axis, want string
	}{
		{"A1", "Name"},
		{"B1", "Born"},
		{"A2", "Ada"},
		{"B2", "1815-12-10"},
		{"C2", "99.5"},
		{"A3", "Nobody"},
		{"B3", ""}, // nil leaves the cell empty
		{"C3", "12.25"},
		{"A4", "Grace"},
		{"B4", ""}, // invalid NullTime
		{"C4", "7"},
	}
	for _, tc := range cases {
		got, err := xl.GetCellValue("People", tc.axis, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "cell %s", tc.axis)
	}
}

func TestStreamWriterHeaderless(t *testing.T) {
	var buf bytes.Buffer
	sw := NewWriter(&buf, WithTempDir(t.TempDir()))
	sheet, err := sw.NewSheet("Raw", []Column{{}, {}})
	require.NoError(t, err)
	require.NoError(t, sheet.AppendRow("first", 1))
	require.NoError(t, sheet.Close())
	require.NoError(t, sw.Close())

	xl, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer xl.Close()
	// Without header names the first appended row lands on row 1.
	got, err := xl.GetCellValue("Raw", "A1")
	require.NoError(t, err)
	require.Equal(t, "first", got)
}

func TestStreamWriterStyleDedup(t *testing.T) {
	var buf bytes.Buffer
	sw := NewWriter(&buf, WithTempDir(t.TempDir()))
	bold := Style{FontBold: true}
	a := sw.getStyle(bold)
	b := sw.getStyle(bold)
	require.Same(t, a, b)
	require.Nil(t, sw.getStyle(Style{}))
	require.NoError(t, sw.Close())
}

func TestStreamWriterAfterClose(t *testing.T) {
	var buf bytes.Buffer
	sw := NewWriter(&buf, WithTempDir(t.TempDir()))
	sheet, err := sw.NewSheet("S", nil)
	require.NoError(t, err)
	require.NoError(t, sw.Close())

	_, err = sw.NewSheet("T", nil)
	require.ErrorIs(t, err, ErrFinished)
	require.ErrorIs(t, sheet.AppendRow("late"), ErrFinished)
	// Closing twice is harmless.
	require.NoError(t, sw.Close())
}

func TestStreamWriterSheetNameError(t *testing.T) {
	var buf bytes.Buffer
	sw := NewWriter(&buf, WithTempDir(t.TempDir()))
	_, err := sw.NewSheet("bad[name]", nil)
	require.ErrorIs(t, err, ErrSheetName)
}
