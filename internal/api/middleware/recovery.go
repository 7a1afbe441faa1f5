package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/rsweeney/sleepaid/pkg/problem"
)

// Recovery converts handler panics into a problem+json 500 so a single
// bad request never takes the API down.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic in %s %s: %v\n%s", r.Method, r.URL.Path, err, debug.Stack())
				problem.InternalError("An unexpected error occurred").Write(w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
