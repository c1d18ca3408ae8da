package util

import (
	"fmt"
	"html"
	"os"
	"regexp"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractPDFText ekstrak text layer tiap halaman pakai ledongthuc/pdf
func ExtractPDFText(path string) (text string, err error) {
	// the parser panics on some malformed xref tables
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to parse PDF: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(pageText)
		textBuilder.WriteString("\n\n")
	}

	return strings.TrimSpace(textBuilder.String()), nil
}

// ExtractPDFTextFitz renders text through MuPDF. Slower, but copes with
// layouts the pure-Go parser returns nothing for.
func ExtractPDFTextFitz(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var fullText strings.Builder
	var lastErr error
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			lastErr = fmt.Errorf("page %d: %w", n+1, err)
			continue
		}
		if pageText = strings.TrimSpace(pageText); pageText != "" {
			fullText.WriteString(pageText)
			fullText.WriteString("\n\n")
		}
	}

	result := strings.TrimSpace(fullText.String())
	if result == "" && lastErr != nil {
		return "", fmt.Errorf("failed to extract text: %w", lastErr)
	}
	return result, nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

// ExtractDocxText pulls the body text out of a .docx, one line per paragraph.
func ExtractDocxText(path string) (string, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open docx: %w", err)
	}
	defer r.Close()

	content := r.Editable().GetContent()
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	return strings.TrimSpace(unescapeXML(content)), nil
}

func ExtractPlainText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// unescapeXML juga menangani numeric entity seperti &#8217; dan &#x2013;
func unescapeXML(s string) string {
	return html.UnescapeString(s)
}
