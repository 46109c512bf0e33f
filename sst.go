// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import (
	"errors"
	"fmt"
)

// ErrStringTable reports an inconsistent shared string table, which is
// a structural bug, not a user input problem.
var ErrStringTable = errors.New("inconsistent shared string table")

// sharedStrings assigns stable integer ids to distinct cell text in
// first-insertion order. The dense id-ordered table is built once, at
// finalize time.
type sharedStrings struct {
	ids    map[string]int
	rich   map[int]bool
	count  int // total references, including repeats
	unique int
	table  []string
}

func newSharedStrings() *sharedStrings {
	return &sharedStrings{ids: make(map[string]int), rich: make(map[int]bool)}
}

// add returns the id for s, assigning the next id on first sight.
func (st *sharedStrings) add(s string) int {
	st.count++
	if id, ok := st.ids[s]; ok {
		return id
	}
	id := st.unique
	st.ids[s] = id
	st.unique++
	return id
}

// addRich is add for a pre-rendered rich text fragment. The id is
// flagged so chart value resolution can blank it.
func (st *sharedStrings) addRich(fragment string) int {
	id := st.add(fragment)
	st.rich[id] = true
	return id
}

// materialize builds the id-ordered table and discards the insertion
// map to bound peak memory. Ids must cover [0, unique) exactly.
func (st *sharedStrings) materialize() error {
	st.table = make([]string, st.unique)
	filled := make([]bool, st.unique)
	for s, id := range st.ids {
		if id < 0 || id >= st.unique {
			return fmt.Errorf("%w: id %d outside [0,%d)", ErrStringTable, id, st.unique)
		}
		if filled[id] {
			return fmt.Errorf("%w: id %d assigned twice", ErrStringTable, id)
		}
		st.table[id] = s
		filled[id] = true
	}
	for id, ok := range filled {
		if !ok {
			return fmt.Errorf("%w: id %d has no string", ErrStringTable, id)
		}
	}
	st.ids = nil
	return nil
}

// lookup returns the string for id after materialize.
func (st *sharedStrings) lookup(id int) (string, bool) {
	if id < 0 || id >= len(st.table) {
		return "", false
	}
	return st.table[id], true
}
