// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ErrInvalidName rejects a defined name that fails the identifier
// grammar, shadows a cell reference, or is scoped to an unknown sheet.
var ErrInvalidName = errors.New("invalid defined name")

// Reserved internal names harvested from worksheet print settings.
const (
	nameFilterDatabase = "_xlnm._FilterDatabase"
	namePrintArea      = "_xlnm.Print_Area"
	namePrintTitles    = "_xlnm.Print_Titles"
	xlnmPrefix         = "_xlnm."
)

// definedName is one raw defined-name entry: explicit (user-declared)
// or implicit (harvested from autofilter/print settings).
type definedName struct {
	name       string
	sheetIndex int // -1 for workbook-global scope
	formula    string
	hidden     bool
}

// Digits are deliberately absent from the tail class; consumers depend
// on the exact rejection set.
var (
	nameGrammarRE = regexp.MustCompile(`^[A-Za-z_\\][A-Za-z_.\\]*$`)
	cellLikeRE    = regexp.MustCompile(`^[A-Za-z][A-Za-z]?[A-Da-d]?[0-9]+$`)
)

// approveName validates a single defined-name declaration. The sheet
// scope must exist, the bare name (internal prefix ignored) must match
// the identifier grammar and must not look like a cell address.
func (wb *Workbook) approveName(dn definedName) error {
	if dn.sheetIndex >= len(wb.sheets) {
		return fmt.Errorf("%w: %q: unknown sheet scope %d", ErrInvalidName, dn.name, dn.sheetIndex)
	}
	bare := strings.TrimPrefix(dn.name, xlnmPrefix)
	if !nameGrammarRE.MatchString(bare) {
		return fmt.Errorf("%w: %q", ErrInvalidName, dn.name)
	}
	if cellLikeRE.MatchString(bare) {
		return fmt.Errorf("%w: %q looks like a cell reference", ErrInvalidName, dn.name)
	}
	return nil
}

// DefineName declares a workbook-level name for a range formula such as
// "=Sheet1!$A$1:$B$2". A "Sheet1!Name" form scopes the name to that
// sheet. Invalid declarations return ErrInvalidName and leave the
// workbook unchanged.
func (wb *Workbook) DefineName(name, formula string) error {
	dn := definedName{name: name, sheetIndex: -1, formula: strings.TrimPrefix(formula, "=")}
	if i := strings.IndexByte(name, '!'); i >= 0 {
		sheetName := unquoteSheetName(name[:i])
		dn.name = name[i+1:]
		sheet := wb.sheetByName(sheetName)
		if sheet == nil {
			return fmt.Errorf("%w: %q: unknown sheet %q", ErrInvalidName, name, sheetName)
		}
		dn.sheetIndex = sheet.index
	}
	if err := wb.approveName(dn); err != nil {
		return err
	}
	wb.definedNames = append(wb.definedNames, dn)
	return nil
}

// prepareDefinedNames harvests the implicit names, re-validates the
// explicit ones, sorts the combined list and derives the named-range
// view. Individual invalid explicit names are dropped and reported;
// the pass itself never fails.
func (wb *Workbook) prepareDefinedNames() {
	kept := make([]definedName, 0, len(wb.definedNames))
	for _, dn := range wb.definedNames {
		if err := wb.approveName(dn); err != nil {
			wb.log.Warn("dropping defined name", "name", dn.name, "error", err)
			continue
		}
		kept = append(kept, dn)
	}

	for _, sheet := range wb.sheets {
		ref := quoteSheetName(sheet.name)
		if sheet.autofilter != "" {
			kept = append(kept, definedName{
				name:       nameFilterDatabase,
				sheetIndex: sheet.index,
				formula:    ref + "!" + sheet.autofilter,
				hidden:     true,
			})
		}
		if sheet.printArea != "" {
			kept = append(kept, definedName{
				name:       namePrintArea,
				sheetIndex: sheet.index,
				formula:    ref + "!" + sheet.printArea,
			})
		}
		if titles := sheet.printTitles(); titles != "" {
			kept = append(kept, definedName{
				name:       namePrintTitles,
				sheetIndex: sheet.index,
				formula:    titles,
			})
		}
	}

	sortDefinedNames(kept)
	wb.definedNames = kept
	wb.namedRanges = wb.extractNamedRanges(kept)
}

// sortDefinedNames orders entries by name with the internal prefix
// stripped and case folded, then by the scoping sheet name with a
// leading quote stripped and case folded. The sort is stable: ties keep
// their original relative order.
func sortDefinedNames(names []definedName) {
	sort.SliceStable(names, func(i, j int) bool {
		a := sortKey(names[i])
		b := sortKey(names[j])
		if a != b {
			return a < b
		}
		return sheetKey(names[i]) < sheetKey(names[j])
	})
}

func sortKey(dn definedName) string {
	return strings.ToLower(strings.TrimPrefix(dn.name, xlnmPrefix))
}

func sheetKey(dn definedName) string {
	sheet, _ := splitRangeFormula(dn.formula)
	return strings.ToLower(strings.TrimPrefix(sheet, "'"))
}

// splitRangeFormula splits a range formula at its last '!' into the raw
// sheet part and the cell part. ok is false when there is no '!'.
func splitRangeFormula(formula string) (sheet string, ok bool) {
	i := strings.LastIndexByte(formula, '!')
	if i < 0 {
		return "", false
	}
	return formula[:i], true
}

// extractNamedRanges derives the flattened "Sheet!Name" view used by
// the document summary part. Autofilter markers are excluded. Scoped
// entries use their owning sheet's name; global entries only appear
// when their formula carries a sheet qualifier.
func (wb *Workbook) extractNamedRanges(names []definedName) []string {
	var ranges []string
	for _, dn := range names {
		if dn.name == nameFilterDatabase {
			continue
		}
		scopeName := ""
		if dn.sheetIndex >= 0 && dn.sheetIndex < len(wb.sheets) {
			scopeName = wb.sheets[dn.sheetIndex].name
		}
		switch {
		case strings.HasPrefix(dn.name, xlnmPrefix):
			if scopeName != "" {
				ranges = append(ranges, scopeName+"!"+strings.TrimPrefix(dn.name, xlnmPrefix))
			}
		case scopeName != "":
			ranges = append(ranges, scopeName+"!"+dn.name)
		default:
			if _, hasSheet := splitRangeFormula(dn.formula); hasSheet {
				ranges = append(ranges, dn.name)
			}
		}
	}
	return ranges
}
