package dict

import "github.com/arclake/datablock/schema"

// Manager holds one Dictionary per string-bearing column, indexed by
// column position rather than keyed by name. This is the vector-of-
// interners shape: cheaper than a name-keyed map-of-maps and avoids a
// column-name lookup on every cell write, at the cost of the caller
// already knowing each cell's column index (which every builder does).
type Manager struct {
	dicts []*Dictionary // dicts[i] is nil until column i's first string write
}

// NewManager returns a Manager sized for s, with no Dictionary allocated
// yet — each column's Dictionary is created lazily on first use.
func NewManager(s schema.Schema) *Manager {
	return &Manager{dicts: make([]*Dictionary, len(s))}
}

// Intern interns s into column colIdx's dictionary, creating that
// dictionary on first use, and returns the dense id.
func (m *Manager) Intern(colIdx int, s string) int32 {
	d := m.dicts[colIdx]
	if d == nil {
		d = NewDictionary()
		m.dicts[colIdx] = d
	}

	return d.Intern(s)
}

// Dictionary returns column colIdx's Dictionary, or nil if that column
// never had a string interned.
func (m *Manager) Dictionary(colIdx int) *Dictionary {
	return m.dicts[colIdx]
}

// ReverseDicts builds the columnName -> (id -> string) map a Block needs
// at assembly time. Only columns that actually had a Dictionary created
// are present; a column declared STRING/STRING_ARRAY/BYTES_ARRAY whose
// rows were never written is simply absent rather than an empty entry.
func (m *Manager) ReverseDicts(s schema.Schema) map[string]map[int32]string {
	out := make(map[string]map[int32]string)

	for i, d := range m.dicts {
		if d == nil {
			continue
		}

		rev := make(map[int32]string, d.Len())
		for id, val := range d.Values() {
			rev[int32(id)] = val
		}
		out[s[i].Name] = rev
	}

	return out
}
