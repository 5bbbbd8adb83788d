// Package natsort implements natural ("numeric-aware") string ordering under
// English collation rules.
//
// Digit runs compare by numeric value, so "9" < "10". Letters compare by
// base letter first, so accents and case only decide the order when the
// strings are otherwise equal ("José" < "Joseph", "a" < "A"). Punctuation
// sorts before digits, and digits before letters.
package natsort

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collators keep internal buffers and must not be shared across goroutines.
var collators = sync.Pool{
	New: func() any { return collate.New(language.English, collate.Numeric) },
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to,
// or after b in natural order.
func Compare(a, b string) int {
	c := collators.Get().(*collate.Collator)
	defer collators.Put(c)
	return c.CompareString(a, b)
}

// Less reports whether a sorts strictly before b.
func Less(a, b string) bool { return Compare(a, b) < 0 }
