package impl

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Shruti30000/Document-Translation/web/impl/genai"
	"github.com/Shruti30000/Document-Translation/web/impl/pdf"
	"github.com/Shruti30000/Document-Translation/web/impl/translate"
)

// Rasterizer converts raw PDF bytes into ordered page images.
type Rasterizer func(pdfBytes []byte) ([]pdf.PageImage, error)

type server struct {
	genai     genai.Client
	translate translate.Client
	rasterize Rasterizer

	// Upload limit for the multipart form. The Gemini inline-data limit
	// is 20MB, so larger documents are rejected up front.
	maxUploadBytes int64
}

func New(genaiClient genai.Client, translationClient translate.Client, rasterize Rasterizer) *server {
	return &server{
		genai:          genaiClient,
		translate:      translationClient,
		rasterize:      rasterize,
		maxUploadBytes: 20 * 1024 * 1024,
	}
}

// Register installs the JSON API on mux. Static assets for the web UI are
// wired separately in web/cmd.
func (s *server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/translate", s.handleTranslateDocument)
	mux.HandleFunc("/api/explain", s.handleExplainDocument)
	mux.HandleFunc("/api/languages", s.handleLanguages)
	mux.HandleFunc("/api/download/translated", s.handleDownloadTranslated)
	mux.HandleFunc("/api/download/explanation", s.handleDownloadExplanation)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}
