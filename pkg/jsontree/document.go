package jsontree

import (
	"bytes"
	stderrors "errors"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tailscale/hujson"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is a JSON object
type Document map[string]any

// Override sets Value at the key path Path
type Override struct {
	Path  []string
	Value any
}

// At builds an override from a dotted path: "profiles.defaults.font.face"
// addresses nested objects.
func At(dotted string, value any) Override {
	return Override{Path: strings.Split(dotted, "."), Value: value}
}

// Key builds an override for a single top-level key that may itself contain
// dots, such as "terminal.integrated.fontFamily".
func Key(key string, value any) Override {
	return Override{Path: []string{key}, Value: value}
}

// String renders the path with dots for logs
func (o Override) String() string {
	return strings.Join(o.Path, ".")
}

// Parse decodes a settings document. Empty or whitespace-only input is an
// empty document. Comments and trailing commas are accepted. Numbers are
// kept as json.Number so they round-trip unchanged.
func Parse(data []byte) (Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, nil
	}

	value, err := hujson.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid settings document: %w", err)
	}
	value.Standardize()

	dec := json.NewDecoder(bytes.NewReader(value.Pack()))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid settings document: %w", err)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("settings document must be a JSON object, got %T", raw)
	}
	return Document(obj), nil
}

// ErrNotObject is returned when an override would descend through an
// existing value that is not an object, such as the "profiles" array of
// older Windows Terminal settings.
var ErrNotObject = stderrors.New("intermediate value is not an object")

// check reports whether path can be set without replacing a non-object
// intermediate. Missing and null intermediates are fine.
func (d Document) check(path []string) error {
	var node any = map[string]any(d)
	for i, segment := range path[:len(path)-1] {
		obj := node.(map[string]any)
		child, ok := obj[segment]
		if !ok || child == nil {
			return nil
		}
		if _, isObj := child.(map[string]any); !isObj {
			return fmt.Errorf("%w: %s is %s", ErrNotObject, strings.Join(path[:i+1], "."), kind(child))
		}
		node = child
	}
	return nil
}

// Upsert sets value at path, creating missing or null intermediates as empty
// objects. An existing intermediate of any other type is left alone and
// ErrNotObject is returned. An empty path is a no-op.
func (d Document) Upsert(path []string, value any) error {
	if len(path) == 0 {
		return nil
	}
	if err := d.check(path); err != nil {
		return err
	}

	node := map[string]any(d)
	for _, segment := range path[:len(path)-1] {
		child, ok := node[segment].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[segment] = child
		}
		node = child
	}
	node[path[len(path)-1]] = value
	return nil
}

func kind(v any) string {
	switch v.(type) {
	case []any:
		return "an array"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case json.Number, float64, int:
		return "a number"
	default:
		return fmt.Sprintf("a %T", v)
	}
}

// Lookup returns the value at path
func (d Document) Lookup(path []string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}

	var current any = map[string]any(d)
	for _, segment := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Apply upserts every override in order. All paths are checked first, so
// on a conflict the document is returned unchanged with the error.
func (d Document) Apply(overrides []Override) (Document, error) {
	for _, o := range overrides {
		if len(o.Path) == 0 {
			continue
		}
		if err := d.check(o.Path); err != nil {
			return d, err
		}
	}
	for _, o := range overrides {
		if err := d.Upsert(o.Path, o.Value); err != nil {
			return d, err
		}
	}
	return d, nil
}

// Contains reports whether the value at the override's path encodes to the
// same JSON as the override value. int 12 and json.Number("12") match.
func (d Document) Contains(o Override) bool {
	got, ok := d.Lookup(o.Path)
	if !ok {
		return false
	}
	gotJSON, err := json.Marshal(got)
	if err != nil {
		return false
	}
	wantJSON, err := json.Marshal(o.Value)
	if err != nil {
		return false
	}
	return bytes.Equal(gotJSON, wantJSON)
}

// Marshal encodes the document with two-space indentation, sorted keys and a
// trailing newline. HTML characters are not escaped.
func (d Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(map[string]any(d)); err != nil {
		return nil, fmt.Errorf("encode settings document: %w", err)
	}
	return buf.Bytes(), nil
}
