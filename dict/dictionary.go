// Package dict implements the per-column string dictionary: dense,
// insertion-ordered ids assigned the first time a string is seen, reused
// on every repeat. One Dictionary exists per string-bearing column; a
// Manager holds one per column position and builds it lazily.
package dict

import "github.com/arclake/datablock/internal/hash"

// hashThreshold is the string length above which a Dictionary pre-hashes
// the value with xxhash before probing the forward map. Below it, map
// lookup on the string itself is already cheap enough that hashing twice
// would only add overhead.
const hashThreshold = 32

// Dictionary interns strings into dense int32 ids in first-seen order. It
// is not safe for concurrent use; callers serialize access to one column
// at a time, the same way a builder writes one cell at a time.
type Dictionary struct {
	forward  map[string]int32
	reverse  []string         // reverse[id] == the interned string
	longHash map[uint64]int32 // xxhash(s) -> id, long strings only (fast path)
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		forward: make(map[string]int32),
	}
}

// Intern returns the dense id for s, assigning the next sequential id the
// first time s is seen. Strings longer than hashThreshold are additionally
// probed through a precomputed xxhash key first, to skip the (length-
// proportional) forward-map probe on a repeat; identity is still decided
// by exact string equality against forward, so a hash collision can never
// change which id is returned, only whether the fast path is taken.
func (d *Dictionary) Intern(s string) int32 {
	if len(s) > hashThreshold {
		h := fastHash(s)
		if d.longHash == nil {
			d.longHash = make(map[uint64]int32)
		}
		if id, ok := d.longHash[h]; ok && d.reverse[id] == s {
			return id
		}

		if id, ok := d.forward[s]; ok {
			d.longHash[h] = id

			return id
		}

		id := int32(len(d.reverse))
		d.forward[s] = id
		d.reverse = append(d.reverse, s)
		d.longHash[h] = id

		return id
	}

	if id, ok := d.forward[s]; ok {
		return id
	}

	id := int32(len(d.reverse))
	d.forward[s] = id
	d.reverse = append(d.reverse, s)

	return id
}

// Lookup returns the string for id and whether id is in range.
func (d *Dictionary) Lookup(id int32) (string, bool) {
	if id < 0 || int(id) >= len(d.reverse) {
		return "", false
	}

	return d.reverse[id], true
}

// Len returns the number of distinct strings interned so far.
func (d *Dictionary) Len() int {
	return len(d.reverse)
}

// Values returns the interned strings in id order (index i is the string
// for id i). The caller must not mutate the returned slice.
func (d *Dictionary) Values() []string {
	return d.reverse
}

// fastHash is the long-string fast-path probe key; it never participates
// in id assignment, only in how a long string is probed.
func fastHash(s string) uint64 {
	return hash.ID(s)
}
