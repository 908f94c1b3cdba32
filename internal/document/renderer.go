// Package document renders resident notices (check-in, relocation) as PDF files.
package document

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

// Line is one "label: value" row of a notice
type Line struct {
	Label string
	Value string
}

// Notice is a titled list of lines
type Notice struct {
	Title string
	Lines []Line
}

// Renderer writes notices into a directory
type Renderer struct {
	dir      string
	fontPath string
}

// NewRenderer creates a renderer writing into dir. fontPath optionally names a
// TTF font used for every line; without it the core Helvetica font is used and
// text is translated to cp1252.
func NewRenderer(dir, fontPath string) *Renderer {
	return &Renderer{dir: dir, fontPath: fontPath}
}

// Render writes the notice to <dir>/<name> and returns the file path
func (r *Renderer) Render(name string, notice Notice) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create document dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	family := "Helvetica"
	translate := func(s string) string { return s }
	if r.fontPath != "" {
		if _, err := os.Stat(r.fontPath); err != nil {
			return "", fmt.Errorf("document font: %w", err)
		}
		family = "notice"
		pdf.AddUTF8Font(family, "", r.fontPath)
		pdf.AddUTF8Font(family, "B", r.fontPath)
	} else {
		translate = pdf.UnicodeTranslatorFromDescriptor("")
	}

	pdf.AddPage()
	pdf.SetFont(family, "B", 16)
	pdf.CellFormat(0, 10, translate(notice.Title), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	for _, line := range notice.Lines {
		pdf.SetFont(family, "B", 12)
		pdf.CellFormat(55, 8, translate(line.Label+":"), "", 0, "L", false, 0, "")
		pdf.SetFont(family, "", 12)
		pdf.MultiCell(0, 8, translate(line.Value), "", "L", false)
	}

	path := filepath.Join(r.dir, filepath.Base(name))
	if err := writeAtomic(path, pdf); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// writeAtomic writes the document next to path and renames it into place,
// so readers of path never see a partially written file.
func writeAtomic(path string, pdf *fpdf.Fpdf) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if err := pdf.Output(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
