package impl

import (
	"encoding/json"
	"net/http"

	"github.com/Shruti30000/Document-Translation/web/impl/genai"
	"github.com/Shruti30000/Document-Translation/web/impl/translate"
)

type explainDocumentRequest struct {
	Text string `json:"text"`
}

type explainDocumentResponse struct {
	Explanation string `json:"explanation"`
	// Downloadable tells the UI whether to offer the explanation as a
	// file; diagnostics and failure messages are display-only.
	Downloadable bool `json:"downloadable"`
}

// handleExplainDocument summarizes previously translated text. Summarize
// never fails, so this handler always answers 200 with a display string.
func (s *server) handleExplainDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req explainDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result := s.genai.Summarize(r.Context(), req.Text)
	writeJSON(w, http.StatusOK, explainDocumentResponse{
		Explanation:  result.Text(),
		Downloadable: result.Kind() == genai.KindSuccess,
	})
}

type languagesResponse struct {
	Languages []string `json:"languages"`
}

func (s *server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, languagesResponse{Languages: translate.SupportedLanguages()})
}
