// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import (
	"fmt"
	"strings"
)

// Worksheet grid limits of the xlsx format.
const (
	MaxRows = 1_048_576
	MaxCols = 16_384
)

// colName converts a zero-based column index to its A1-style letters.
func colName(col int) string {
	var b [8]byte
	i := len(b)
	for {
		i--
		b[i] = byte('A' + col%26)
		col = col/26 - 1
		if col < 0 {
			break
		}
	}
	return string(b[i:])
}

// cellRef converts zero-based row/column to an A1-style reference.
func cellRef(row, col int) string {
	return fmt.Sprintf("%s%d", colName(col), row+1)
}

// absCellRef is cellRef with absolute ($) markers.
func absCellRef(row, col int) string {
	return fmt.Sprintf("$%s$%d", colName(col), row+1)
}

// absRangeRef renders an absolute range, collapsing a single cell.
func absRangeRef(firstRow, firstCol, lastRow, lastCol int) string {
	if firstRow == lastRow && firstCol == lastCol {
		return absCellRef(firstRow, firstCol)
	}
	return absCellRef(firstRow, firstCol) + ":" + absCellRef(lastRow, lastCol)
}

// cellToRowCol parses an A1-style reference, with or without $ markers,
// into zero-based row and column.
func cellToRowCol(ref string) (row, col int, err error) {
	s := strings.ReplaceAll(ref, "$", "")
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		col = col*26 + int(s[i]-'A') + 1
		i++
	}
	if i == 0 || i == len(s) {
		return 0, 0, fmt.Errorf("%q: not a cell reference", ref)
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, 0, fmt.Errorf("%q: not a cell reference", ref)
		}
		row = row*10 + int(s[i]-'0')
	}
	return row - 1, col - 1, nil
}

// quoteSheetName quotes a sheet name for use in a formula when it
// contains anything beyond word characters. Embedded single quotes are
// doubled.
func quoteSheetName(name string) string {
	plain := true
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !(c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			plain = false
			break
		}
	}
	if plain && name != "" && !(name[0] >= '0' && name[0] <= '9') {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// unquoteSheetName reverses quoteSheetName.
func unquoteSheetName(name string) string {
	if len(name) >= 2 && name[0] == '\'' && name[len(name)-1] == '\'' {
		name = name[1 : len(name)-1]
		name = strings.ReplaceAll(name, "''", "'")
	}
	return name
}
