package v5

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scigolib/matcore/internal/stream"
)

func TestHeaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := stream.NewWriter(&buf, littleEndianForTest())
	require.NoError(t, WriteHeader(w, "matcore test file"))

	r := stream.NewReader(bytes.NewReader(buf.Bytes()), littleEndianForTest())
	hdr, err := ReadHeader(r)
	require.NoError(t, err)
	assert.Equal(t, "matcore test file", hdr.Description)
	assert.Equal(t, uint16(0x0100), hdr.Version)
}

func TestReadHeaderRejectsBadIndicator(t *testing.T) {
	buf := make([]byte, headerSize)
	copy(buf[126:128], []byte("XX"))
	r := stream.NewReader(bytes.NewReader(buf), littleEndianForTest())
	_, err := ReadHeader(r)
	assert.ErrorIs(t, err, errInvalid())
}
