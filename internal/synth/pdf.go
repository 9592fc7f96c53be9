package synth

import (
	"archive/zip"
	"bytes"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// PDF renders text content into a minimal single-column PDF so that .pdf
// destinations in the corpus contain actual PDF structure rather than plain
// text with a misleading extension.
func PDF(title, body string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 12)
	pdf.MultiCell(190, 6, title, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(190, 5, body, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Archive builds an in-memory ZIP backup archive with n small text members.
func Archive(n int) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for i := 0; i < n; i++ {
		w, err := zw.Create(fmt.Sprintf("file_%02d.txt", i+1))
		if err != nil {
			return nil, fmt.Errorf("create archive member: %w", err)
		}
		content := fmt.Sprintf("Archive file %d\nBackup date: %s\nFile size: %d bytes",
			i+1,
			time.Now().Format("2006-01-02 15:04:05"),
			1024+rand.IntN(10240-1024+1),
		)
		if _, err := w.Write([]byte(content)); err != nil {
			return nil, fmt.Errorf("write archive member: %w", err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}
