// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import (
	"errors"
	"testing"
)

func TestDefineNameValidation(t *testing.T) {
	wb := New()
	if _, err := wb.AddWorksheet("Sheet1"); err != nil {
		t.Fatal(err)
	}

	good := []string{"Exchange_rate", "_rate", `\rate`, "a.b", "Sheet1!Local"}
	for _, name := range good {
		if err := wb.DefineName(name, "=Sheet1!$A$1"); err != nil {
			t.Errorf("DefineName(%q): %v", name, err)
		}
	}

	bad := []string{
		"",          // empty
		"rate 1",    // space
		"rate-1",    // hyphen
		"rate1",     // digits are not in the grammar
		"A1",        // cell reference
		"$B$5",      // not an identifier
		"XFD1",      // cell-like
		"Nope!Name", // unknown sheet scope
	}
	for _, name := range bad {
		if err := wb.DefineName(name, "=Sheet1!$A$1"); !errors.Is(err, ErrInvalidName) {
			t.Errorf("DefineName(%q) = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestPrepareDefinedNamesHarvest(t *testing.T) {
	wb := New()
	ws, err := wb.AddWorksheet("Report 1")
	if err != nil {
		t.Fatal(err)
	}
	ws.AutoFilter(0, 0, 9, 2)
	ws.PrintArea(0, 0, 19, 3)
	ws.RepeatRows(0, 1)
	ws.RepeatColumns(0, 0)

	wb.prepareDefinedNames()

	byName := make(map[string]definedName)
	for _, dn := range wb.definedNames {
		byName[dn.name] = dn
	}

	fd, ok := byName[nameFilterDatabase]
	if !ok || !fd.hidden || fd.sheetIndex != 0 {
		t.Errorf("_FilterDatabase = %+v, want hidden sheet-scoped entry", fd)
	}
	if want := "'Report 1'!$A$1:$C$10"; fd.formula != want {
		t.Errorf("_FilterDatabase formula = %q, want %q", fd.formula, want)
	}

	pa := byName[namePrintArea]
	if want := "'Report 1'!$A$1:$D$20"; pa.formula != want {
		t.Errorf("Print_Area formula = %q, want %q", pa.formula, want)
	}

	// Columns come first, comma-joined with the rows.
	pt := byName[namePrintTitles]
	if want := "'Report 1'!$A:$A,'Report 1'!$1:$2"; pt.formula != want {
		t.Errorf("Print_Titles formula = %q, want %q", pt.formula, want)
	}
	if pt.hidden {
		t.Error("Print_Titles must not be hidden")
	}
}

func TestSortDefinedNames(t *testing.T) {
	names := []definedName{
		{name: "Zebra", formula: "Sheet1!$A$1"},
		{name: "_xlnm.Print_Area", formula: "Sheet2!$A$1"},
		{name: "_xlnm.Print_Area", formula: "Sheet1!$A$1"},
		{name: "apple", formula: "Sheet1!$A$1"},
		{name: "Apple", formula: "'A sheet'!$A$1"},
	}
	sortDefinedNames(names)

	got := make([]string, len(names))
	for i, dn := range names {
		got[i] = dn.name + "@" + dn.formula
	}
	want := []string{
		// "apple" folds equal to "Apple"; the quoted sheet strips to "a sheet".
		"Apple@'A sheet'!$A$1",
		"apple@Sheet1!$A$1",
		// The _xlnm. prefix is ignored for ordering.
		"_xlnm.Print_Area@Sheet1!$A$1",
		"_xlnm.Print_Area@Sheet2!$A$1",
		"Zebra@Sheet1!$A$1",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractNamedRanges(t *testing.T) {
	wb := New()
	ws1, _ := wb.AddWorksheet("Sheet1")
	if _, err := wb.AddWorksheet("Sheet2"); err != nil {
		t.Fatal(err)
	}
	ws1.AutoFilter(0, 0, 4, 1)
	ws1.PrintArea(0, 0, 9, 0)
	if err := wb.DefineName("Global", "=Sheet2!$B$2"); err != nil {
		t.Fatal(err)
	}
	if err := wb.DefineName("Sheet1!Local", "=Sheet1!$A$1"); err != nil {
		t.Fatal(err)
	}
	if err := wb.DefineName("Const", "=1+2"); err != nil {
		t.Fatal(err)
	}

	wb.prepareDefinedNames()
	got := wb.NamedRanges()

	want := map[string]bool{
		"Global":            true, // global with sheet-qualified formula
		"Sheet1!Local":      true,
		"Sheet1!Print_Area": true,
	}
	if len(got) != len(want) {
		t.Fatalf("NamedRanges() = %v, want keys %v", got, want)
	}
	for _, r := range got {
		if !want[r] {
			t.Errorf("unexpected named range %q", r)
		}
	}
}

func TestPrepareDropsInvalidNames(t *testing.T) {
	wb := New()
	if _, err := wb.AddWorksheet("Sheet1"); err != nil {
		t.Fatal(err)
	}
	if err := wb.DefineName("Fine", "=Sheet1!$A$1"); err != nil {
		t.Fatal(err)
	}
	// Bypass DefineName to plant an entry that fails re-validation.
	wb.definedNames = append(wb.definedNames, definedName{name: "bad name", sheetIndex: -1})

	wb.prepareDefinedNames()
	if len(wb.definedNames) != 1 || wb.definedNames[0].name != "Fine" {
		t.Errorf("definedNames = %+v, want only Fine", wb.definedNames)
	}
}
