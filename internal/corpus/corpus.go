package corpus

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/net/html"
)

// Format is the kind of document a file holds, chosen by extension.
type Format int

const (
	FormatText Format = iota
	FormatHTML
	FormatPDF
)

// FormatOf picks the reader for a path.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return FormatHTML
	case ".pdf":
		return FormatPDF
	default:
		return FormatText
	}
}

// ReadFile returns the plain text of a document.
func ReadFile(path string) (string, error) {
	switch FormatOf(path) {
	case FormatHTML:
		return readHTML(path)
	case FormatPDF:
		return readPDF(path)
	default:
		return readText(path)
	}
}

// ReadDir reads every regular file below root, keyed by its path (root joined
// with the relative path). Files that cannot be read are reported in errs and
// left out of the result; the walk continues.
func ReadDir(root string) (map[string]string, []error) {
	files, err := listFiles(root)
	if err != nil {
		return nil, []error{fmt.Errorf("list files in %s: %w", root, err)}
	}

	docs := make(map[string]string, len(files))
	var errs []error
	for _, path := range files {
		text, err := ReadFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		docs[path] = text
	}
	return docs, errs
}

func listFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files, err
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file %s: %w", path, err)
	}
	return string(data), nil
}

// blockElements end a line of extracted text.
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"title": true, "section": true, "article": true, "blockquote": true, "pre": true,
}

func readHTML(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("read file %s: %w", path, err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return "", fmt.Errorf("parse html %s: %w", path, err)
	}
	return HTMLText(doc), nil
}

// HTMLText extracts the visible text of a parsed document. Script and style
// contents are skipped and block elements end a line.
func HTMLText(doc *html.Node) string {
	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
		if n.Type == html.ElementNode && blockElements[n.Data] {
			buf.WriteByte('\n')
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}

func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if f != nil {
		defer f.Close()
	}
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text %s: %w", path, err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("extract pdf text %s: %w", path, err)
	}
	return buf.String(), nil
}
