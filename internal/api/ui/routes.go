package ui

import (
	"io/fs"
	"net/http"

	"github.com/Venkatasai-102/agenda-tracker/web"
)

// RegisterRoutes registers the embedded dashboard at / and its assets under
// /static/.
func RegisterRoutes(mux *http.ServeMux) {
	distFS, err := fs.Sub(web.DistFS, "dist")
	if err != nil {
		panic("failed to create sub filesystem: " + err.Error())
	}

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		indexBytes, err := fs.ReadFile(distFS, "index.html")
		if err != nil {
			http.Error(w, "index.html not found", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(indexBytes)
	})

	mux.Handle("GET /static/", http.FileServer(http.FS(distFS)))
}
