package adapter

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "textaug.dev/pkg/textaug/internal/model"
)

// ErrEmptyTablePath is returned when a table is requested without a path.
var ErrEmptyTablePath = errors.New("empty table path")

// BuiltinPrefix marks table paths served from the tables bundled with the binary.
const BuiltinPrefix = "builtin:"

//go:embed tables/*.json
var builtinTables embed.FS

// BuiltinTablePath returns the path of a bundled table, e.g. builtin:ocr_en.json.
func BuiltinTablePath(model, lang string) string {
	return BuiltinPrefix + model + "_" + lang + ".json"
}

// TableStore loads substitution tables from disk.
//
// Files ending in .yaml or .yml are read as YAML, everything else as JSON.
// Parsing is lenient: values that are not arrays and array elements that are
// not strings are skipped, and keys left without candidates are dropped.
type TableStore interface {
	// LoadMapping reads a trigger → candidates object.
	LoadMapping(ctx context.Context, path string) (m.Mapping, error)
	// LoadList reads a flat array of candidates.
	LoadList(ctx context.Context, path string) ([]string, error)
}

// FileTableStore is the TableStore backed by the local filesystem and the
// bundled tables.
type FileTableStore struct {
	builtin fs.FS
}

// NewFileTableStore constructs a FileTableStore.
func NewFileTableStore() *FileTableStore {
	sub, err := fs.Sub(builtinTables, "tables")
	if err != nil {
		panic(err)
	}

	return &FileTableStore{builtin: sub}
}

// LoadMapping implements TableStore.
func (s *FileTableStore) LoadMapping(ctx context.Context, path string) (m.Mapping, error) {
	raw, err := s.decode(ctx, path)
	if err != nil {
		return nil, err
	}

	object, ok := objectOf(raw)
	if !ok {
		return nil, fmt.Errorf("table %s: expected an object of candidate arrays, got %T", path, raw)
	}

	mapping := make(m.Mapping, len(object))

	for _, key := range sortedAnyKeys(object) {
		values, ok := object[key].([]any)
		if !ok {
			slog.Debug("Skipping non-array table entry", "path", path, "key", key)
			continue
		}

		candidates := stringsOf(values)
		if len(candidates) == 0 {
			continue
		}

		mapping[key] = candidates
	}

	slog.Debug("Loaded table", "path", path, "keys", len(mapping))

	return mapping, nil
}

// LoadList implements TableStore.
func (s *FileTableStore) LoadList(ctx context.Context, path string) ([]string, error) {
	raw, err := s.decode(ctx, path)
	if err != nil {
		return nil, err
	}

	values, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("table %s: expected an array of candidates, got %T", path, raw)
	}

	return stringsOf(values), nil
}

func (s *FileTableStore) decode(ctx context.Context, path string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyTablePath
	}

	data, err := s.read(path)
	if err != nil {
		slog.Error("Failed to read table", "path", path, "error", err)
		return nil, fmt.Errorf("read table %s: %w", path, err)
	}

	var raw any

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}

	if err != nil {
		slog.Error("Failed to parse table", "path", path, "error", err)
		return nil, fmt.Errorf("parse table %s: %w", path, err)
	}

	return raw, nil
}

func (s *FileTableStore) read(path string) ([]byte, error) {
	if name, ok := strings.CutPrefix(path, BuiltinPrefix); ok {
		return fs.ReadFile(s.builtin, name)
	}

	// #nosec G304 - table path is supplied by the user on purpose
	return os.ReadFile(path)
}

// objectOf accepts both map shapes yaml.v3 produces; non-string YAML keys
// such as unquoted digits are formatted back to text.
func objectOf(raw any) (map[string]any, bool) {
	switch object := raw.(type) {
	case map[string]any:
		return object, true
	case map[any]any:
		converted := make(map[string]any, len(object))
		for key, value := range object {
			converted[fmt.Sprint(key)] = value
		}

		return converted, true
	default:
		return nil, false
	}
}

func stringsOf(values []any) []string {
	result := make([]string, 0, len(values))

	for _, value := range values {
		if text, ok := value.(string); ok {
			result = append(result, text)
		}
	}

	return result
}

func sortedAnyKeys(object map[string]any) []string {
	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
