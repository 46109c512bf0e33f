// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import (
	"errors"
	"testing"
)

func TestSharedStringsDedup(t *testing.T) {
	st := newSharedStrings()
	ids := []int{
		st.add("alpha"),
		st.add("beta"),
		st.add("alpha"),
		st.add("gamma"),
		st.add("beta"),
	}
	want := []int{0, 1, 0, 2, 1}
	for i, id := range ids {
		if id != want[i] {
			t.Errorf("id[%d] = %d, want %d", i, id, want[i])
		}
	}
	if st.count != 5 {
		t.Errorf("count = %d, want 5", st.count)
	}
	if st.unique != 3 {
		t.Errorf("unique = %d, want 3", st.unique)
	}
}

func TestSharedStringsMaterialize(t *testing.T) {
	st := newSharedStrings()
	st.add("x")
	st.add("y")
	st.add("x")
	if err := st.materialize(); err != nil {
		t.Fatal(err)
	}
	if got, ok := st.lookup(0); !ok || got != "x" {
		t.Errorf("lookup(0) = %q, %t", got, ok)
	}
	if got, ok := st.lookup(1); !ok || got != "y" {
		t.Errorf("lookup(1) = %q, %t", got, ok)
	}
	if _, ok := st.lookup(2); ok {
		t.Error("lookup(2) should miss")
	}
	if st.ids != nil {
		t.Error("insertion map should be dropped after materialize")
	}
}

func TestSharedStringsMaterializeDetectsGaps(t *testing.T) {
	st := newSharedStrings()
	st.add("a")
	st.add("b")
	st.unique = 3 // simulate a missing id
	err := st.materialize()
	if !errors.Is(err, ErrStringTable) {
		t.Fatalf("err = %v, want ErrStringTable", err)
	}
}

func TestSharedStringsRich(t *testing.T) {
	st := newSharedStrings()
	plain := st.add("text")
	rich := st.addRich(`<r><t xml:space="preserve">text2</t></r>`)
	if st.rich[plain] {
		t.Error("plain id flagged rich")
	}
	if !st.rich[rich] {
		t.Error("rich id not flagged")
	}
	// The same fragment dedups like any string.
	if again := st.addRich(`<r><t xml:space="preserve">text2</t></r>`); again != rich {
		t.Errorf("rich dedup: %d != %d", again, rich)
	}
}
