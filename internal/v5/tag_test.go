package v5

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scigolib/matcore/internal/stream"
)

func TestTagCompactForm(t *testing.T) {
	var buf bytes.Buffer
	w := stream.NewWriter(&buf, littleEndianForTest())
	require.NoError(t, writeTag(w, miInt32, []byte{1, 2, 3, 4}))
	assert.Equal(t, 8, buf.Len())

	r := stream.NewReader(bytes.NewReader(buf.Bytes()), littleEndianForTest())
	tg, err := readTag(r)
	require.NoError(t, err)
	assert.True(t, tg.Compact)
	assert.Equal(t, uint32(4), tg.Size)

	payload, err := readPayload(r, tg)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, payload)
}

func TestTagRegularFormWithPadding(t *testing.T) {
	var buf bytes.Buffer
	w := stream.NewWriter(&buf, littleEndianForTest())
	payload := []byte{1, 2, 3, 4, 5}
	require.NoError(t, writeTag(w, miUint8, payload))
	assert.Equal(t, 16, buf.Len()) // 8-byte tag + 5 bytes rounded to 8

	r := stream.NewReader(bytes.NewReader(buf.Bytes()), littleEndianForTest())
	tg, err := readTag(r)
	require.NoError(t, err)
	assert.False(t, tg.Compact)
	assert.Equal(t, uint32(5), tg.Size)

	got, err := readPayload(r, tg)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestTagSizeLimitRejected(t *testing.T) {
	var buf [8]byte
	littleEndianForTest().PutUint32(buf[0:4], uint32(miDouble))
	littleEndianForTest().PutUint32(buf[4:8], uint32(maxTagSize)+1)
	r := stream.NewReader(bytes.NewReader(buf[:]), littleEndianForTest())
	_, err := readTag(r)
	assert.ErrorIs(t, err, errAlloc())
}
