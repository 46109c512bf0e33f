// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGetEncoding(t *testing.T) {
	for _, name := range []string{"", "utf-8", "UTF8"} {
		enc, err := GetEncoding(name)
		if err != nil || enc != nil {
			t.Errorf("GetEncoding(%q) = %v, %v, want nil, nil", name, enc, err)
		}
	}
	if enc, err := GetEncoding("iso-8859-2"); err != nil || enc == nil {
		t.Errorf("GetEncoding(iso-8859-2) = %v, %v", enc, err)
	}
	if _, err := GetEncoding("no-such-charset"); err == nil {
		t.Error("GetEncoding(no-such-charset): want error")
	}
}

func TestOpenCSVSeparatorSniffing(t *testing.T) {
	cases := []struct {
		name, content string
		sep           rune
	}{
		{"comma", "a,b,c\n1,2,3\n", ','},
		{"semicolon", "a;b;c\n1;2;3\n", ';'},
		{"tab", "a\tb\tc\n1\t2\t3\n", '\t'},
	}
	for _, tc := range cases {
		fn := filepath.Join(t.TempDir(), tc.name+".csv")
		if err := os.WriteFile(fn, []byte(tc.content), 0o644); err != nil {
			t.Fatal(err)
		}
		cr, err := OpenCSV(fn, "")
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if cr.Comma != tc.sep {
			t.Errorf("%s: separator = %q, want %q", tc.name, cr.Comma, tc.sep)
		}
		row, err := cr.Read()
		if err != nil || len(row) != 3 {
			t.Errorf("%s: first record = %v, %v", tc.name, row, err)
		}
		cr.Close()
	}
}

func TestImportCSV(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(fn, []byte("city;population\nBern;134591\nBasel;178120\n"), 0o644))

	var buf bytes.Buffer
	sw := NewWriter(&buf, WithTempDir(t.TempDir()))
	cr, err := OpenCSV(fn, "")
	require.NoError(t, err)
	defer cr.Close()
	require.NoError(t, ImportCSV(sw, "Cities", cr.Reader))
	require.NoError(t, sw.Close())

	xl, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer xl.Close()

	got, err := xl.GetCellValue("Cities", "A1")
	require.NoError(t, err)
	require.Equal(t, "city", got)
	got, err = xl.GetCellValue("Cities", "A2")
	require.NoError(t, err)
	require.Equal(t, "Bern", got)
	// Numeric-looking fields become number cells.
	got, err = xl.GetCellValue("Cities", "B3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Equal(t, "178120", got)

	// The header style is the interned bold format.
	styleID, err := xl.GetCellStyle("Cities", "A1")
	require.NoError(t, err)
	style, err := xl.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	require.True(t, style.Font.Bold)
}
