package prefab

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMalformedDocument = errors.New("malformed prefab document")

// Document is a parsed prefab master: serialized property values keyed by
// component type name under a single "Entity" object. A document is
// immutable for the duration of one synchronization pass; it is re-read
// from disk on the next pass, so staleness between saves is fine.
type Document struct {
	Components map[string]map[string]json.RawMessage
}

type documentFile struct {
	Entity map[string]map[string]json.RawMessage `json:"Entity"`
}

// ParseDocument decodes a master prefab file. Any malformation is a hard
// error: synchronizing against a partially parsed master is unsafe.
func ParseDocument(data []byte) (*Document, error) {
	var file documentFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if file.Entity == nil {
		return nil, fmt.Errorf(`%w: missing "Entity" object`, ErrMalformedDocument)
	}
	return &Document{Components: file.Entity}, nil
}

// Has reports whether the document defines the component type.
func (d *Document) Has(typeName string) bool {
	_, ok := d.Components[typeName]
	return ok
}

// Value returns the serialized value for one property, if defined.
func (d *Document) Value(typeName, propertyName string) (json.RawMessage, bool) {
	props, ok := d.Components[typeName]
	if !ok {
		return nil, false
	}
	raw, ok := props[propertyName]
	return raw, ok
}

// EncodeDocument renders a document back into the on-disk form.
func EncodeDocument(d *Document) ([]byte, error) {
	return json.MarshalIndent(documentFile{Entity: d.Components}, "", "  ")
}
