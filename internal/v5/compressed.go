package v5

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/scigolib/matcore/internal/stream"
)

// maxDecompressedSize caps inflate output to guard against a compression
// bomb hidden in a miCOMPRESSED element.
const maxDecompressedSize = 256 * 1024 * 1024

// maxCompressionRatio flags a suspicious inflate ratio even under the
// absolute size cap above.
const maxCompressionRatio = 1000

func inflate(compressed []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("%w: opening miCOMPRESSED stream: %v", errCompression(), err)
	}
	defer zr.Close() //nolint:errcheck

	var out bytes.Buffer
	n, err := io.Copy(&out, io.LimitReader(zr, maxDecompressedSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: inflating element: %v", errCompression(), err)
	}
	if n > maxDecompressedSize {
		return nil, fmt.Errorf("%w: decompressed element exceeds %d bytes", errCompression(), maxDecompressedSize)
	}
	if len(compressed) > 0 && float64(n)/float64(len(compressed)) > maxCompressionRatio {
		return nil, fmt.Errorf("%w: compression ratio %.0f:1 exceeds limit", errCompression(), float64(n)/float64(len(compressed)))
	}
	return out.Bytes(), nil
}

func deflate(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("%w: deflating element: %v", errCompression(), err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: closing deflate stream: %v", errCompression(), err)
	}
	return buf.Bytes(), nil
}

func errCompression() error { return compressionErr }

// readCompressed reads a miCOMPRESSED element's payload (t.Size bytes of
// zlib stream) and returns an inner stream.Reader over the inflated bytes,
// same byte order as the outer file.
func readCompressed(r *stream.Reader, t tag) (*stream.Reader, error) {
	raw, err := readPayload(r, t)
	if err != nil {
		return nil, err
	}
	inflated, err := inflate(raw)
	if err != nil {
		return nil, err
	}
	return stream.NewReader(bytes.NewReader(inflated), r.Order), nil
}

// writeCompressed deflates payload and writes it as a miCOMPRESSED
// element.
func writeCompressed(w *stream.Writer, payload []byte) error {
	deflated, err := deflate(payload)
	if err != nil {
		return err
	}
	return writeTag(w, miCompressed, deflated)
}
