package webapp

import (
	"log"
	"net/http"
)

func (webapp *WebApp) startPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog, err := webapp.openCatalog()
		if err != nil {
			log.Printf("Unable to open catalog: %v", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}
		defer catalog.Close()

		data := webapp.newTplData(catalog)
		data["Title"] = "Summary"

		types, err := catalog.FileTypeStats()
		if err != nil {
			log.Printf("Unable to load file type stats: %v", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}
		data["FileTypes"] = types

		history, err := catalog.RunHistory(1)
		if err != nil {
			log.Printf("Unable to load run history: %v", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}
		if len(history) > 0 {
			data["LastRun"] = history[0]
		}

		if err := webapp.TemplateCache["startpage.html"].Execute(w, data); err != nil {
			log.Printf("Template error: %v", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
		}
	}
}
