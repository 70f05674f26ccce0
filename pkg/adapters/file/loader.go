package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ic1618/chat-bot/pkg/domain"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the catalog is looked up when no path is configured.
var DefaultPath = filepath.Join("data", "stock-data.json")

// Loader implements ports.CatalogLoader on a local JSON or YAML document.
type Loader struct {
	Path string
}

// New creates a Loader for path. An empty path falls back to DefaultPath.
func New(path string) *Loader {
	if path == "" {
		path = DefaultPath
	}
	return &Loader{Path: path}
}

// Load reads and decodes the catalog. The format follows the file extension:
// .yaml and .yml are read as YAML, anything else as JSON.
func (l *Loader) Load(ctx context.Context) ([]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: file '%s' not found", domain.ErrCatalogNotFound, l.Path)
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var records []map[string]any
	switch strings.ToLower(filepath.Ext(l.Path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to load YAML data from '%s': %w", l.Path, err)
		}
	default:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to load JSON data from '%s': %w", l.Path, err)
		}
	}

	if records == nil {
		records = []map[string]any{}
	}
	return records, nil
}
