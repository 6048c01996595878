package dict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDictionary_Intern_AssignsDenseIdsInFirstSeenOrder(t *testing.T) {
	d := NewDictionary()

	id0 := d.Intern("alpha")
	id1 := d.Intern("beta")
	id2 := d.Intern("alpha")

	require.Equal(t, int32(0), id0)
	require.Equal(t, int32(1), id1)
	require.Equal(t, id0, id2, "repeat of an existing value must reuse its id")
	require.Equal(t, 2, d.Len())
}

func TestDictionary_Lookup(t *testing.T) {
	d := NewDictionary()
	id := d.Intern("gamma")

	val, ok := d.Lookup(id)
	require.True(t, ok)
	require.Equal(t, "gamma", val)

	_, ok = d.Lookup(99)
	require.False(t, ok)

	_, ok = d.Lookup(-1)
	require.False(t, ok)
}

func TestDictionary_Values(t *testing.T) {
	d := NewDictionary()
	d.Intern("a")
	d.Intern("b")
	d.Intern("a")

	require.Equal(t, []string{"a", "b"}, d.Values())
}

func TestDictionary_Intern_LongStrings(t *testing.T) {
	d := NewDictionary()
	long := strings.Repeat("x", hashThreshold+1)

	id0 := d.Intern(long)
	id1 := d.Intern(long)
	id2 := d.Intern(strings.Repeat("y", hashThreshold+1))

	require.Equal(t, id0, id1, "repeat of a long string must reuse its id via the hash fast path")
	require.NotEqual(t, id0, id2)
	require.Equal(t, 2, d.Len())
}

func TestDictionary_Empty(t *testing.T) {
	d := NewDictionary()
	require.Equal(t, 0, d.Len())
	require.Empty(t, d.Values())
}
