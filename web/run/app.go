package webapp

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"path"

	"github.com/pavel-webdev/file-organizer/app"
	"github.com/pavel-webdev/file-organizer/version"
	"github.com/pavel-webdev/file-organizer/web"
)

// WebApp serves a read-only view over an organized directory's catalog.
type WebApp struct {
	Router        http.Handler
	TemplateCache map[string]*template.Template
	CatalogPath   string
	Port          int
}

func (webapp *WebApp) GetListenAddr() string {
	port := webapp.Port
	if port <= 0 {
		port = 8080
	}
	return fmt.Sprintf(":%d", port)
}

func (webapp *WebApp) GetRouter() http.Handler {
	return router(webapp)
}

func (webapp *WebApp) InitTemplates() {
	webapp.TemplateCache = make(map[string]*template.Template)

	funcMap := template.FuncMap{
		"humanizeBytes": humanizeBytes,
		"formatTime":    formatTime,
		"runDuration":   runDuration,
	}

	pages, err := fs.Glob(web.Templates, "templates/*.html")
	if err != nil {
		log.Fatalf("failed to glob templates: %v", err)
	}

	for _, page := range pages {
		name := path.Base(page)
		if name == "layout.html" {
			continue
		}

		var ts *template.Template
		var err error

		// Error template is standalone (no layout)
		if name == "error.html" {
			ts, err = template.New(name).Funcs(funcMap).ParseFS(web.Templates, page)
		} else {
			ts, err = template.New(name).Funcs(funcMap).ParseFS(web.Templates, page, "templates/layout.html")
		}

		if err != nil {
			log.Fatalf("failed to parse template %s: %v", name, err)
		}
		webapp.TemplateCache[name] = ts
	}
}

// openCatalog opens the catalog for a single request.
func (webapp *WebApp) openCatalog() (*app.Catalog, error) {
	return app.OpenCatalog(webapp.CatalogPath)
}

// newTplData seeds the fields every layout page expects.
func (webapp *WebApp) newTplData(catalog *app.Catalog) map[string]any {
	data := make(map[string]any)
	data["Version"] = version.Version
	data["Commit"] = version.Commit
	data["BuildDate"] = version.BuildDate

	categories, err := catalog.CategoryStats()
	if err != nil {
		log.Printf("Unable to load category stats: %v", err)
	}
	data["Categories"] = categories

	return data
}
