package content

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/cqnothing/internal/i18n"
	"github.com/abhisek/cqnothing/internal/logging"
)

//go:embed data/*.json schema/*.json
var embedded embed.FS

// Document names. A content directory holds one file per document, named
// <document>.json, <document>.yaml or <document>.yml.
const (
	DocCauses    = "causes"
	DocScenarios = "scenarios"
	DocStrings   = "strings"
)

var documents = []string{DocCauses, DocScenarios, DocStrings}

var documentExtensions = []string{".json", ".yaml", ".yml"}

// ErrNoDocument is returned when a content directory lacks a document.
var ErrNoDocument = errors.New("content document not found")

// LoadError reports a document that could not be read, validated or decoded.
type LoadError struct {
	Document string
	Path     string
	Err      error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load %s catalog: %v", e.Document, e.Err)
	}
	return fmt.Sprintf("load %s catalog (%s): %v", e.Document, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

type causesDocument struct {
	Categories map[Category]i18n.Text `json:"categories" yaml:"categories"`
	Causes     []Cause                `json:"causes" yaml:"causes"`
}

type scenariosDocument struct {
	Scenarios          []Scenario                 `json:"scenarios" yaml:"scenarios"`
	Enums              i18n.EnumCatalog           `json:"enums" yaml:"enums"`
	PlausibilityLevels map[Plausibility]i18n.Text `json:"plausibilityLevels" yaml:"plausibilityLevels"`
}

type stringsDocument struct {
	DefaultLanguage    string               `json:"defaultLanguage" yaml:"defaultLanguage"`
	SupportedLanguages []string             `json:"supportedLanguages" yaml:"supportedLanguages"`
	Strings            map[string]i18n.Text `json:"strings" yaml:"strings"`
}

// LoadEmbedded builds a Store from the catalogs compiled into the binary.
func LoadEmbedded() (*Store, error) {
	return LoadFS(embedded, "data")
}

// LoadFS builds a Store from the three documents in dir within fsys. Every
// document must be present.
func LoadFS(fsys fs.FS, dir string) (*Store, error) {
	var cat Catalog
	for _, doc := range documents {
		p, err := findDocument(fsys, dir, doc)
		if err != nil {
			return nil, &LoadError{Document: doc, Err: err}
		}
		if err := decodeDocument(fsys, p, doc, &cat); err != nil {
			return nil, &LoadError{Document: doc, Path: p, Err: err}
		}
	}
	return New(cat), nil
}

// LoadDir builds a Store from an OS directory. Documents missing from dir
// are taken from the embedded catalogs, so a directory may override only
// the scenarios, for example.
func LoadDir(dir string) (*Store, error) {
	log := logger()
	dirFS := os.DirFS(dir)

	var cat Catalog
	for _, doc := range documents {
		fsys, p := fs.FS(dirFS), ""
		found, err := findDocument(dirFS, ".", doc)
		switch {
		case err == nil:
			p = found
			log.Debug("loading document", "document", doc, "path", path.Join(dir, p))
		case errors.Is(err, ErrNoDocument):
			log.Info("document not in content dir, using embedded copy", "document", doc, "dir", dir)
			fsys = embedded
			if p, err = findDocument(embedded, "data", doc); err != nil {
				return nil, &LoadError{Document: doc, Err: err}
			}
		default:
			return nil, &LoadError{Document: doc, Path: dir, Err: err}
		}
		if err := decodeDocument(fsys, p, doc, &cat); err != nil {
			return nil, &LoadError{Document: doc, Path: p, Err: err}
		}
	}
	return New(cat), nil
}

func findDocument(fsys fs.FS, dir, doc string) (string, error) {
	for _, ext := range documentExtensions {
		p := path.Join(dir, doc+ext)
		info, err := fs.Stat(fsys, p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrNoDocument, doc, dir)
}

func decodeDocument(fsys fs.FS, p, doc string, cat *Catalog) error {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return err
	}
	isYAML := strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml")

	value, err := parseValue(data, isYAML)
	if err != nil {
		return err
	}
	if err := validateDocument(doc, value); err != nil {
		return err
	}

	unmarshal := json.Unmarshal
	if isYAML {
		unmarshal = yaml.Unmarshal
	}

	switch doc {
	case DocCauses:
		var d causesDocument
		if err := unmarshal(data, &d); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		cat.Categories = d.Categories
		cat.Causes = d.Causes
	case DocScenarios:
		var d scenariosDocument
		if err := unmarshal(data, &d); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		cat.Scenarios = d.Scenarios
		cat.Enums = d.Enums
		cat.PlausibilityLevels = d.PlausibilityLevels
	case DocStrings:
		var d stringsDocument
		if err := unmarshal(data, &d); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		cat.Strings = d.Strings
		cat.DefaultLanguage = d.DefaultLanguage
		cat.SupportedLanguages = d.SupportedLanguages
	default:
		return fmt.Errorf("unknown document %q", doc)
	}
	return nil
}

// parseValue returns the document as the generic JSON value the schema
// validator expects. YAML is round-tripped through JSON so both formats
// validate identically.
func parseValue(data []byte, isYAML bool) (any, error) {
	var v any
	if !isYAML {
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return v, nil
	}

	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("convert YAML: %w", err)
	}
	v = nil
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("convert YAML: %w", err)
	}
	return v, nil
}

func logger() *slog.Logger {
	return logging.New("content")
}
