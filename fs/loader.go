// Package fs loads crawled document datasets from disk and writes
// processing results back out as JSON files.
package fs

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/hqanh/vanban"
)

// datasetFile matches the crawler's output format: either a top-level
// object with a "documents" array or a bare array of documents.
type datasetFile struct {
	Documents []datasetDocument `json:"documents"`
}

type datasetDocument struct {
	Title     string `json:"title"`
	Number    string `json:"number"`
	Field     string `json:"field"`
	IssueDate string `json:"issue_date"`
	Agency    string `json:"agency"`
	URL       string `json:"url"`
	Content   string `json:"content"`
}

// Loader reads crawled documents from a dataset JSON file.
type Loader struct {
	// Extractor, when set, converts each document's raw content to
	// plain text before the document is returned.
	Extractor vanban.TextExtractor
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads a dataset file and returns the documents it contains.
// Document IDs are derived from the issuing number, falling back to the
// source URL and finally to the document's position in the file. IDs are
// unique within one load.
func (l *Loader) Load(filename string) ([]*vanban.Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, vanban.Errorf(vanban.EINVALID, "failed to read dataset %s: %v", filename, err)
	}

	var raw []datasetDocument
	var file datasetFile
	if err := json.Unmarshal(data, &file); err == nil && file.Documents != nil {
		raw = file.Documents
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return nil, vanban.Errorf(vanban.EMALFORMED, "failed to parse dataset %s: %v", filename, err)
	}

	seen := make(map[string]int)
	docs := make([]*vanban.Document, 0, len(raw))
	for i, d := range raw {
		content := d.Content
		if l.Extractor != nil {
			extracted, err := l.Extractor.ExtractText(content)
			if err != nil {
				return nil, err
			}
			content = extracted
		}

		base := deriveDocID(d, i)
		id := base
		if n, ok := seen[base]; ok {
			// The suffixed candidate may itself be taken by a document
			// whose derived id already ends in _<n>.
			for {
				n++
				id = fmt.Sprintf("%s_%d", base, n)
				if _, taken := seen[id]; !taken {
					break
				}
			}
			seen[base] = n
		}
		seen[id] = 1

		docs = append(docs, &vanban.Document{
			ID:        id,
			Number:    d.Number,
			Title:     d.Title,
			Agency:    d.Agency,
			IssueDate: d.IssueDate,
			SourceURL: d.URL,
			Content:   content,
		})
	}

	return docs, nil
}

// deriveDocID builds a stable filesystem-safe identifier for a document.
func deriveDocID(d datasetDocument, index int) string {
	if d.Number != "" {
		return slugify(d.Number)
	}
	if d.URL != "" {
		if u, err := url.Parse(d.URL); err == nil {
			if seg := path.Base(u.Path); seg != "" && seg != "/" && seg != "." {
				return slugify(strings.TrimSuffix(seg, path.Ext(seg)))
			}
		}
	}
	return fmt.Sprintf("doc_%d", index)
}

// slugify replaces path and punctuation characters so the ID can be used
// as a filename.
func slugify(s string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", "-", "_", ".", "_", " ", "_")
	return replacer.Replace(strings.TrimSpace(s))
}
