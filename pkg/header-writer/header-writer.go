// Package headerwriter provides an http.ResponseWriter wrapper that
// runs a callback exactly once, just before the response header section
// is written to the underlying writer. It buffers nothing: status and
// body bytes stream straight through.
package headerwriter

import "net/http"

// Writer wraps an http.ResponseWriter and invokes a callback with the
// status code immediately before the headers are flushed. The callback
// may still mutate the header map at that point.
type Writer struct {
	rw          http.ResponseWriter
	before      func(statusCode int)
	wroteHeader bool
}

// New returns a new Writer wrapping rw.
// The before callback is invoked at most once per response.
func New(rw http.ResponseWriter, before func(statusCode int)) *Writer {
	return &Writer{
		rw:     rw,
		before: before,
	}
}

// Header returns the underlying writer's header map, so values set by
// the wrapped handler and by the before callback end up in the same
// place.
func (w *Writer) Header() http.Header {
	return w.rw.Header()
}

// WriteHeader runs the before callback on the first call, then
// forwards the status code.
func (w *Writer) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		w.before(statusCode)
	}
	w.rw.WriteHeader(statusCode)
}

// Write triggers an implicit 200 header write first, matching the
// net/http contract.
func (w *Writer) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.rw.Write(b)
}

// WroteHeader reports whether the response header has been written.
// Handlers that return without writing anything leave this false, in
// which case the server will send an implicit 200 later.
func (w *Writer) WroteHeader() bool {
	return w.wroteHeader
}

// Flush forwards to the underlying writer if it supports flushing.
func (w *Writer) Flush() {
	if f, ok := w.rw.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *Writer) Unwrap() http.ResponseWriter {
	return w.rw
}
