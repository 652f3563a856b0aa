// core/index/table.go
package index

import (
	"errors"
	"fmt"
	"strings"
)

// Kind selects which half of an index pair a lookup returns.
type Kind int

const (
	I7 Kind = iota
	I5
)

func (k Kind) String() string {
	switch k {
	case I7:
		return "i7"
	case I5:
		return "i5"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrIndexNotFound matches every *NotFoundError.
var ErrIndexNotFound = errors.New("index not found")

// NotFoundError names the key that had no row in the table.
type NotFoundError struct {
	Key  string
	Kind Kind
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s index not found for key %q", e.Kind, e.Key)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrIndexNotFound }

// Entry is one row of the index sheet. Key is a well-style position ("A1").
type Entry struct {
	Key     string
	I7Name  string
	I7Index string
	I5Name  string
	I5Index string
}

// Table is an immutable key -> Entry map, safe for concurrent readers.
type Table struct {
	byKey   map[string]Entry
	ignored []Ignored
}

// Ignored is a row New left out: it had no key, or an earlier row already
// used its key.
type Ignored struct {
	Row int // 1-based position in the entries passed to New
	Key string
}

// NormalizeKey upper-cases and trims a lookup key.
func NormalizeKey(k string) string { return strings.ToUpper(strings.TrimSpace(k)) }

// New builds a table. Keys are normalized. The first row for a key wins;
// rows without a key can never match and are left out.
func New(entries []Entry) *Table {
	t := &Table{byKey: make(map[string]Entry, len(entries))}
	for i, e := range entries {
		k := NormalizeKey(e.Key)
		if _, dup := t.byKey[k]; k == "" || dup {
			t.ignored = append(t.ignored, Ignored{Row: i + 1, Key: k})
			continue
		}
		e.Key = k
		t.byKey[k] = e
	}
	return t
}

// Lookup returns the name and sequence of the given kind stored under key.
func (t *Table) Lookup(key string, kind Kind) (name, seq string, err error) {
	e, ok := t.Entry(key)
	if !ok {
		return "", "", &NotFoundError{Key: NormalizeKey(key), Kind: kind}
	}
	switch kind {
	case I7:
		return e.I7Name, e.I7Index, nil
	case I5:
		return e.I5Name, e.I5Index, nil
	default:
		return "", "", fmt.Errorf("unknown index kind %v", kind)
	}
}

// Entry returns the full row for key.
func (t *Table) Entry(key string) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	e, ok := t.byKey[NormalizeKey(key)]
	return e, ok
}

// Len is the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byKey)
}

// Ignored lists the rows New left out, in input order.
func (t *Table) Ignored() []Ignored {
	if t == nil {
		return nil
	}
	return t.ignored
}
