package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// muxCurrentRouteTemplate returns the matched route's path template,
// e.g. "/api/v1/models/{id}".
func muxCurrentRouteTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return ""
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return ""
	}
	return tpl
}
