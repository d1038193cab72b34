package webapp

import (
	"log"
	"net/http"
)

func (webapp *WebApp) runs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog, err := webapp.openCatalog()
		if err != nil {
			log.Printf("Unable to open catalog: %v", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}
		defer catalog.Close()

		history, err := catalog.RunHistory(30)
		if err != nil {
			log.Printf("Unable to load run history: %v", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}

		data := webapp.newTplData(catalog)
		data["Title"] = "Runs"
		data["Runs"] = history

		if err := webapp.TemplateCache["runs.html"].Execute(w, data); err != nil {
			log.Printf("Template error: %v", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
		}
	}
}
