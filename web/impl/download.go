package impl

import (
	"fmt"
	"net/http"
)

const (
	translatedFilename  = "translated_document.txt"
	explanationFilename = "explanation_summary.txt"
)

// Nothing is persisted server-side, so the download endpoints echo the
// text the client posts back as a named text/plain attachment.
func (s *server) handleDownloadTranslated(w http.ResponseWriter, r *http.Request) {
	s.download(w, r, translatedFilename)
}

func (s *server) handleDownloadExplanation(w http.ResponseWriter, r *http.Request) {
	s.download(w, r, explanationFilename)
}

func (s *server) download(w http.ResponseWriter, r *http.Request, filename string) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	content := r.FormValue("content")
	if content == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "nothing to download"})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	fmt.Fprint(w, content)
}
