package http

import (
	_ "embed"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "invitationservice/docs"
	"invitationservice/internal/delivery/http/controllers"
	"invitationservice/internal/delivery/http/helpers"
)

// InvitationPath is the single resource path of the API.
const InvitationPath = "/invitation"

//go:embed static/index.html
var landingPage []byte

// NewRouter initializes the HTTP router with all application routes.
// metricsHandler may be nil, in which case /metrics is not served.
func NewRouter(invitationController *controllers.InvitationController, metricsHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("POST "+InvitationPath, invitationController.Create)
	mux.HandleFunc("GET "+InvitationPath, invitationController.Retrieve)
	mux.HandleFunc("PUT "+InvitationPath, invitationController.Update)
	mux.HandleFunc("DELETE "+InvitationPath, invitationController.Delete)

	mux.HandleFunc("GET /{$}", LandingPage)

	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("/", NotFound)

	return mux
}

// LandingPage serves the embedded HTML page describing the API.
func LandingPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(landingPage)
}

// NotFound answers every request that matched no route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrKeyRoute, "no route for "+r.Method+" "+r.URL.Path)
}
