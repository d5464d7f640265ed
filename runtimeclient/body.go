package runtimeclient

import (
	"io"

	"github.com/pkg/errors"
)

const chunkSize = 32 * 1024

// readBody appends every chunk read from r, in arrival order, until EOF
func readBody(r io.Reader) ([]byte, error) {
	buf := []byte{}
	chunk := make([]byte, chunkSize)
	for {
		n, err := r.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if err == io.EOF {
			return buf, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read response body")
		}
	}
}
