package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// PanicHandler renders a response after a handler panicked
type PanicHandler func(w http.ResponseWriter, r *http.Request, recovered any)

// Recovery converts a panic into a 500 response so one bad request cannot
// take the server down. onPanic renders the response body; when nil a plain
// 500 is written.
func Recovery(onPanic PanicHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				slog.Error("panic recovered",
					"error", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", GetRequestID(r.Context()),
					"stack", string(debug.Stack()),
				)

				if onPanic != nil {
					onPanic(w, r, rec)
					return
				}
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
