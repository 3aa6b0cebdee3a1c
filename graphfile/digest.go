package graphfile

import (
	"encoding/hex"
	"fmt"
	"io"

	"lukechampine.com/blake3"
)

// Digest returns the hex BLAKE3-256 digest of the record region, which
// identifies the graph content independently of header metadata such as
// sample names.
func (g *Graph) Digest() (string, error) {
	if g.closed {
		return "", ErrClosed
	}

	h := blake3.New(32, nil)
	section := io.NewSectionReader(g.src, g.dataOffset, g.size-g.dataOffset)
	if _, err := io.Copy(h, section); err != nil {
		return "", fmt.Errorf("graphfile: digest %s: %w", g.path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
