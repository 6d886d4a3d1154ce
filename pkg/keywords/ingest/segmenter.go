package ingest

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/keywords/pkg/keywords/internalerr"
)

// wordPattern matches maximal runs of word characters, the same runs a
// \b\w+\b search yields.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// TextToParagraphs splits text on line breaks and drops lines that are blank
// after trimming. Empty or whitespace-only text is rejected.
func TextToParagraphs(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("segment text: %w: text is empty", internalerr.ErrInvalidInput)
	}

	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var paragraphs []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paragraphs = append(paragraphs, line)
	}
	return paragraphs, nil
}

// ParagraphsToSentences splits every paragraph on '.', then splits any
// fragment containing '?' or '!' on that character. Fragments are trimmed and
// empty ones dropped. There is no abbreviation or quotation handling, so
// "e.g. this" yields three sentences.
func ParagraphsToSentences(paragraphs []string) [][]string {
	result := make([][]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		var sentences []string
		for _, fragment := range strings.Split(paragraph, ".") {
			for _, part := range splitTerminators(fragment) {
				part = strings.TrimSpace(part)
				if part != "" {
					sentences = append(sentences, part)
				}
			}
		}
		result = append(result, sentences)
	}
	return result
}

// splitTerminators splits on '?' first and then on '!' inside each piece.
func splitTerminators(fragment string) []string {
	var out []string
	for _, q := range strings.Split(fragment, "?") {
		out = append(out, strings.Split(q, "!")...)
	}
	return out
}

// SentencesToWords extracts the word runs of each sentence, discarding
// punctuation. A sentence without words yields an empty slice.
func SentencesToWords(sentences []string) [][]string {
	result := make([][]string, len(sentences))
	for i, sentence := range sentences {
		words := wordPattern.FindAllString(sentence, -1)
		if words == nil {
			words = []string{}
		}
		result[i] = words
	}
	return result
}

// Flatten collapses one level of nesting, preserving order.
func Flatten[T any](nested [][]T) []T {
	n := 0
	for _, inner := range nested {
		n += len(inner)
	}
	out := make([]T, 0, n)
	for _, inner := range nested {
		out = append(out, inner...)
	}
	return out
}

// Dedupe removes repeated values, keeping the first occurrence.
func Dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
