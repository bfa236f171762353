package attachment

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMapper(t *testing.T) *SQLiteMapper {
	t.Helper()
	m, err := NewSQLiteMapperWithDSN(filepath.Join(t.TempDir(), "attachments.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestAppendAndList(t *testing.T) {
	m := newTestMapper(t)
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, "class-1", [][]byte{[]byte("a"), []byte("b")}))
	// 再次追加接在末尾，不打乱已有顺序
	require.NoError(t, m.Append(ctx, "class-1", [][]byte{[]byte("c")}))

	blobs, err := m.List(ctx, "class-1")
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b"), []byte("c")}, blobs)
}

func TestListIsolatedByClass(t *testing.T) {
	m := newTestMapper(t)
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, "class-1", [][]byte{[]byte("a")}))
	require.NoError(t, m.Append(ctx, "class-2", [][]byte{[]byte("x"), []byte("y")}))

	blobs, err := m.List(ctx, "class-2")
	require.NoError(t, err)
	assert.Len(t, blobs, 2)

	blobs, err = m.List(ctx, "class-3")
	require.NoError(t, err)
	assert.Empty(t, blobs)
}

func TestGet(t *testing.T) {
	m := newTestMapper(t)
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, "class-1", [][]byte{[]byte("a"), []byte("b")}))

	data, err := m.Get(ctx, "class-1", 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), data)

	_, err = m.Get(ctx, "class-1", 9)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDeleteAtShiftsRemaining(t *testing.T) {
	m := newTestMapper(t)
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, "class-1", [][]byte{
		[]byte("a"), []byte("b"), []byte("c"), []byte("d"),
	}))

	require.NoError(t, m.DeleteAt(ctx, "class-1", 1))

	blobs, err := m.List(ctx, "class-1")
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("c"), []byte("d")}, blobs)

	// 删掉头一块，后面全部前移
	require.NoError(t, m.DeleteAt(ctx, "class-1", 0))
	blobs, err = m.List(ctx, "class-1")
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("c"), []byte("d")}, blobs)
}

func TestDeleteAtOutOfRange(t *testing.T) {
	m := newTestMapper(t)
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, "class-1", [][]byte{[]byte("a")}))
	// 越界删除什么都不改
	require.NoError(t, m.DeleteAt(ctx, "class-1", 5))

	blobs, err := m.List(ctx, "class-1")
	require.NoError(t, err)
	assert.Len(t, blobs, 1)
}

func TestDeleteAll(t *testing.T) {
	m := newTestMapper(t)
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, "class-1", [][]byte{[]byte("a"), []byte("b")}))
	require.NoError(t, m.Append(ctx, "class-2", [][]byte{[]byte("x")}))

	require.NoError(t, m.DeleteAll(ctx, "class-1"))

	blobs, err := m.List(ctx, "class-1")
	require.NoError(t, err)
	assert.Empty(t, blobs)

	// 别的授业不受影响
	blobs, err = m.List(ctx, "class-2")
	require.NoError(t, err)
	assert.Len(t, blobs, 1)
}

func TestAppendAfterDelete(t *testing.T) {
	m := newTestMapper(t)
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, "class-1", [][]byte{[]byte("a"), []byte("b")}))
	require.NoError(t, m.DeleteAt(ctx, "class-1", 0))
	require.NoError(t, m.Append(ctx, "class-1", [][]byte{[]byte("c")}))

	blobs, err := m.List(ctx, "class-1")
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("b"), []byte("c")}, blobs)
}
