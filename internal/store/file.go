package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"eca-density/internal/eval"
)

// Supported file formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FileStore writes one document per rule to Dir/<name>.<format>. A later run
// of the same rule overwrites the earlier file.
type FileStore struct {
	Dir    string
	Format string
}

// NewFileStore returns a FileStore, rejecting unknown formats.
func NewFileStore(dir, format string) (*FileStore, error) {
	switch format {
	case FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
	return &FileStore{Dir: dir, Format: format}, nil
}

// Path returns the file a report for name is written to.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.Dir, sanitize(name)+"."+s.Format)
}

// Save encodes r and writes it, creating Dir when missing.
func (s *FileStore) Save(_ context.Context, r *eval.Report) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	data, err := s.encode(NewDocument(r))
	if err != nil {
		return err
	}
	path := s.Path(r.Name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Load reads back the document stored for name.
func (s *FileStore) Load(name string) (Document, error) {
	var doc Document
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return doc, err
	}
	if s.Format == FormatYAML {
		err = yaml.Unmarshal(data, &doc)
	} else {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return doc, fmt.Errorf("failed to decode %s: %w", s.Path(name), err)
	}
	return doc, nil
}

func (s *FileStore) encode(doc Document) ([]byte, error) {
	if s.Format == FormatYAML {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}
	return append(data, '\n'), nil
}

// sanitize keeps rule labels usable as file names.
func sanitize(name string) string {
	if name == "" {
		return "unnamed"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, name)
}
