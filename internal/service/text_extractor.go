package service

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fadilmartias/resume-matcher/internal/util"
	"go.uber.org/zap"
)

// SupportedResumeExtensions lists what can be stored through /resumes.
var SupportedResumeExtensions = []string{".pdf", ".docx", ".txt"}

func IsSupportedResumeExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range SupportedResumeExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

var (
	pdfMagic = []byte("%PDF-")
	zipMagic = []byte("PK\x03\x04")
)

type TextExtractorInterface interface {
	ExtractText(path string) (string, error)
}

// TextExtractor picks a reader from the file's leading bytes. The extension
// only decides between the plain text and docx readers when the content
// does not identify itself; anything else is parsed as a PDF. PDFs go
// through ledongthuc/pdf first and fall back to MuPDF when that yields
// nothing. A document without a text layer gives "" and no error.
type TextExtractor struct {
	log          *zap.Logger
	FitzFallback bool
}

func NewTextExtractor(log *zap.Logger) *TextExtractor {
	return &TextExtractor{log: log, FitzFallback: true}
}

func (e *TextExtractor) ExtractText(path string) (string, error) {
	head, err := readHead(path, 8)
	if err != nil {
		return "", err
	}

	var text string
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case bytes.HasPrefix(head, pdfMagic):
		text, err = e.extractPDF(path)
	case bytes.HasPrefix(head, zipMagic):
		text, err = util.ExtractDocxText(path)
	case ext == ".txt":
		text, err = util.ExtractPlainText(path)
	case ext == ".docx":
		text, err = util.ExtractDocxText(path)
	default:
		text, err = e.extractPDF(path)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		e.log.Warn("resume has no extractable text", zap.String("path", path))
	} else {
		e.log.Debug("extracted resume text", zap.String("path", path), zap.Int("chars", len(text)))
	}
	return text, nil
}

func (e *TextExtractor) extractPDF(path string) (string, error) {
	text, err := util.ExtractPDFText(path)
	if err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	if !e.FitzFallback {
		return text, err
	}

	e.log.Debug("falling back to MuPDF", zap.String("path", path), zap.Error(err))
	fitzText, fitzErr := util.ExtractPDFTextFitz(path)
	if fitzErr != nil {
		if err != nil {
			return "", err
		}
		return "", fitzErr
	}
	return fitzText, nil
}

func readHead(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	head := make([]byte, n)
	read, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return head[:read], nil
}
