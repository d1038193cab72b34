package webapp

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pavel-webdev/file-organizer/web"
)

func router(webapp *WebApp) http.Handler {
	r := chi.NewRouter()

	r.Get("/", webapp.startPage())
	r.Get("/browse/{category}", webapp.browse())
	r.Get("/runs", webapp.runs())

	// Serve embedded assets
	assetsFS, _ := fs.Sub(web.Assets, "assets")
	fileServer := http.FileServer(http.FS(assetsFS))
	r.Handle("/assets/*", http.StripPrefix("/assets/", fileServer))

	r.NotFound(webapp.notFoundHandler())

	return r
}
