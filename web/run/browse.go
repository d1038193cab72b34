package webapp

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pavel-webdev/file-organizer/app"
)

func (webapp *WebApp) browse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := chi.URLParam(r, "category")
		if category == "" {
			webapp.renderError(w, http.StatusBadRequest, "Category is required.")
			return
		}

		catalog, err := webapp.openCatalog()
		if err != nil {
			log.Printf("Unable to open catalog: %v", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}
		defer catalog.Close()

		query := r.URL.Query().Get("q")

		files, err := catalog.ListFiles(app.FileFilter{
			Category: category,
			Query:    query,
		})
		if err != nil {
			log.Printf("Unable to list files for category %s: %v", category, err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}

		data := webapp.newTplData(catalog)
		data["Title"] = category
		data["Category"] = category
		data["Query"] = query
		data["Files"] = files

		if err := webapp.TemplateCache["browse.html"].Execute(w, data); err != nil {
			log.Printf("Template error: %v", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
		}
	}
}
