package pdf

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image/jpeg"

	"github.com/gen2brain/go-fitz"
)

// ErrNoFile is returned when Rasterize is called without any PDF bytes,
// i.e. the user never uploaded a file.
var ErrNoFile = errors.New("no file uploaded")

// MIMETypeJPEG is the encoding used for every rasterized page.
const MIMETypeJPEG = "image/jpeg"

// PageImage is one rasterized PDF page, encoded for transmission to a
// vision model: a JPEG payload carried as base64 text.
type PageImage struct {
	MIMEType string
	Data     string
}

// Rasterize renders every page of the PDF to a JPEG image at the library's
// default resolution, in page order. Page order is significant: it
// determines the order extracted text is concatenated downstream.
func Rasterize(pdfBytes []byte) ([]PageImage, error) {
	if len(pdfBytes) == 0 {
		return nil, ErrNoFile
	}

	doc, err := fitz.NewFromMemory(pdfBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	pages := make([]PageImage, 0, pageCount)
	for pageNum := 0; pageNum < pageCount; pageNum++ {
		img, err := doc.Image(pageNum)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", pageNum+1, err)
		}

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, nil); err != nil {
			return nil, fmt.Errorf("failed to encode page %d as JPEG: %w", pageNum+1, err)
		}

		pages = append(pages, PageImage{
			MIMEType: MIMETypeJPEG,
			Data:     base64.StdEncoding.EncodeToString(buf.Bytes()),
		})
	}

	return pages, nil
}
