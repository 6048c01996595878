package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	bb := New(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := New(DefaultSize)

	bb.MustWrite([]byte("hello"))
	assert.Equal(t, []byte("hello"), bb.Bytes())

	bb.MustWrite([]byte(" world"))
	assert.Equal(t, []byte("hello world"), bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := New(DefaultSize)
	bb.MustWrite([]byte("some data"))
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := New(4)
	bb.Grow(100)
	assert.GreaterOrEqual(t, bb.Cap(), 100)

	bb.MustWrite(make([]byte, 50))
	assert.Equal(t, 50, bb.Len())
}

func TestByteBuffer_Grow_LargeBuffer(t *testing.T) {
	bb := New(growThreshold * 2)
	bb.MustWrite(make([]byte, growThreshold*2))
	prevCap := bb.Cap()

	bb.Grow(10)
	assert.Greater(t, bb.Cap(), prevCap)
}

func TestByteBuffer_Write(t *testing.T) {
	bb := New(DefaultSize)
	n, err := bb.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("abc"), bb.Bytes())
}

func TestPool_GetPut(t *testing.T) {
	p := NewPool(16, 128)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("data"))

	p.Put(bb)

	bb2 := p.Get()
	require.NotNil(t, bb2)
	assert.Equal(t, 0, bb2.Len())
}

func TestPool_Put_DiscardsOversized(t *testing.T) {
	p := NewPool(16, 32)

	bb := p.Get()
	bb.Grow(64)
	bb.MustWrite(make([]byte, 64))

	p.Put(bb)

	bb2 := p.Get()
	assert.LessOrEqual(t, bb2.Cap(), 16)
}

func TestDefaultPool(t *testing.T) {
	bb := Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("x"))
	Put(bb)
}
