package extprot

import "io"

// IOWriter adapts an io.Writer to the raw-bytes sink the versioning layer
// and Conv facade write through, analogous to IOReader on the read side.
type IOWriter struct {
	w io.Writer
}

// NewIOWriter wraps w for writing.
func NewIOWriter(w io.Writer) *IOWriter {
	return &IOWriter{w: w}
}

// WriteRaw writes b to the underlying stream in full or returns an error.
func (w *IOWriter) WriteRaw(b []byte) error {
	_, err := w.w.Write(b)
	return err
}
