package dper

import (
	"bytes"
	"io"
)

// Generate validates the peers and writes their configuration in the given
// output dialect to w. Nothing is written unless all peers are valid and
// rendering succeeded.
func Generate(w io.Writer, peers []Peer, format string, opt RenderOptions) error {
	r, err := NewRenderer(format, opt)
	if err != nil {
		return err
	}
	if err := Validate(peers); err != nil {
		return err
	}
	var b bytes.Buffer
	if err := r.Render(&b, peers); err != nil {
		return err
	}
	_, err = b.WriteTo(w)
	return err
}
