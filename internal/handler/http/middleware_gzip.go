package http

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		w := gzip.NewWriter(nil)
		return w
	},
}

// withGZip compresses response bodies for clients accepting gzip.
//
// Compression starts with the first body write, so responses without a body
// (such as the empty 404) are sent unencoded and stay empty.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		w.Header().Add("Vary", "Accept-Encoding")

		gzipWriter := gzipWriterPool.Get().(*gzip.Writer)
		gzipWriter.Reset(w)

		gzipRW := &gzipResponseWriter{
			ResponseWriter: w,
			gzipWriter:     gzipWriter,
		}

		next.ServeHTTP(gzipRW, req)

		gzipRW.finish()
		gzipWriterPool.Put(gzipWriter)
	})
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer

	// status is held back until the first body write or finish.
	status  int
	started bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.started {
		w.start()
	}
	return w.gzipWriter.Write(data)
}

func (w *gzipResponseWriter) start() {
	w.started = true

	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")

	if w.status == 0 {
		w.status = http.StatusOK
	}
	w.ResponseWriter.WriteHeader(w.status)
}

// finish flushes the compressed stream or, when nothing was written,
// forwards the held status code alone.
func (w *gzipResponseWriter) finish() {
	if w.started {
		w.gzipWriter.Close()
		return
	}

	if w.status != 0 {
		w.ResponseWriter.WriteHeader(w.status)
	}
}
