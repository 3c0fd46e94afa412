package histlog

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNewestFirst(t *testing.T) {
	l := New(10)
	l.Add("1 + 1", "2")
	l.Add("2 + 2", "4")

	require.Equal(t, 2, l.Len())
	assert.Equal(t, "2 + 2 = 4", l.Entries()[0].String())
	assert.Equal(t, "1 + 1 = 2", l.Entries()[1].String())
}

func TestCapEvictsOldest(t *testing.T) {
	l := New(3)
	for i := 0; i < 10; i++ {
		l.Add(fmt.Sprintf("%d + 0", i), fmt.Sprint(i))
	}
	require.Equal(t, 3, l.Len())
	assert.Equal(t, "9 + 0 = 9", l.Entries()[0].String())
	assert.Equal(t, "7 + 0 = 7", l.Entries()[2].String())
}

func TestEntryIDs(t *testing.T) {
	l := New(5)
	a := l.Add("1 + 1", "2")
	b := l.Add("1 + 1", "2")
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestClear(t *testing.T) {
	l := New(5)
	l.Add("1 + 1", "2")
	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Entries())
}

func TestZeroCapUsesDefault(t *testing.T) {
	l := New(0)
	for i := 0; i < DefaultCap+5; i++ {
		l.Add("0 + 0", "0")
	}
	assert.Equal(t, DefaultCap, l.Len())
}
