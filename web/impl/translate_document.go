package impl

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/Shruti30000/Document-Translation/web/impl/pdf"
)

type translateDocumentResponse struct {
	ExtractedText  string `json:"extractedText"`
	TranslatedText string `json:"translatedText"`
}

// handleTranslateDocument runs the whole pipeline for one uploaded PDF:
// rasterize, extract text page by page, translate. Every stage is
// sequential and fail-fast; this handler is the single failure boundary,
// and no partial results are returned when a stage fails.
func (s *server) handleTranslateDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
		return
	}

	pdfBytes, err := uploadBytes(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Please upload a PDF file"})
		return
	}
	sourceLang := r.FormValue("source_lang")
	targetLang := r.FormValue("target_lang")

	pages, err := s.rasterize(pdfBytes)
	if errors.Is(err, pdf.ErrNoFile) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Please upload a PDF file"})
		return
	}
	if err != nil {
		s.fail(w, err)
		return
	}

	// One extraction per page, in rasterization order, with a blank line
	// after every page including the last.
	var extracted strings.Builder
	for _, page := range pages {
		text, err := s.genai.ExtractText(r.Context(), page)
		if err != nil {
			s.fail(w, err)
			return
		}
		extracted.WriteString(text)
		extracted.WriteString("\n\n")
	}

	translated, err := s.translate.Translate(r.Context(), extracted.String(), sourceLang, targetLang)
	if err != nil {
		s.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, translateDocumentResponse{
		ExtractedText:  extracted.String(),
		TranslatedText: translated,
	})
}

func uploadBytes(r *http.Request) ([]byte, error) {
	file, _, err := r.FormFile("document")
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func (s *server) fail(w http.ResponseWriter, err error) {
	log.Printf("Pipeline failed: %v", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error: fmt.Sprintf("An error occurred: %v", err),
		Hint:  "Please check your API keys and try again.",
	})
}
