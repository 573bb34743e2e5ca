package middlewares

import (
	"net/http"
	"strings"

	"github.com/jmarinco/go-inventario/app/store"
	"github.com/jmarinco/go-inventario/app/utils/sessions"
)

// SessionGateMiddleware mirrors the cookie session into the store's gate on
// every request, so mutating actions see the current session state without
// doing any I/O themselves.
func SessionGateMiddleware(sessionStore sessions.SessionStore, gate *store.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID := sessionStore.GetUserID(r); userID != "" {
				gate.SetSession(userID)
			} else {
				gate.ClearSession()
			}
			next.ServeHTTP(w, r)
		})
	}
}

func MethodOverrideMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_ = r.ParseForm()
			override := r.Form.Get("_method")
			if override != "" {
				r.Method = strings.ToUpper(override)
			}
		}
		next.ServeHTTP(w, r)
	})
}
