package gifout

import (
	"bufio"
	"io"
)

// Sink is the narrow capability set the block encoder writes through: single
// bytes, sized blocks and strings, plus a final flush. Each write reports
// success only when the full requested byte count was transferred. The
// lifetime of the underlying stream belongs to the caller; flushing is the
// only teardown at this layer.
type Sink interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
	Flush() error
}

// asSink promotes w to a Sink, wrapping it in a bufio.Writer when it does not
// already provide the required operations.
func asSink(w io.Writer) Sink {
	if s, ok := w.(Sink); ok {
		return s
	}
	return bufio.NewWriter(w)
}
