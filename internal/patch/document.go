// Package patch applies JSON Patch (RFC 6902) documents to typed working copies.
package patch

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

var (
	// ErrEmptyDocument is returned for a missing, null or empty patch document.
	ErrEmptyDocument = errors.New("patch document is empty")
	// ErrInvalidOperation is returned when an operation is malformed or cannot be applied.
	ErrInvalidOperation = errors.New("invalid patch operation")
)

var knownOps = map[string]bool{
	"add": true, "remove": true, "replace": true, "move": true, "copy": true, "test": true,
}

// Operation is one entry of a patch document.
type Operation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	From  string          `json:"from,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

// Document is an ordered list of operations.
type Document []Operation

// Decode parses a patch document from a request body.
func Decode(body []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOperation, err)
	}
	if len(doc) == 0 {
		return nil, ErrEmptyDocument
	}
	for i, op := range doc {
		if !knownOps[strings.ToLower(op.Op)] {
			return nil, fmt.Errorf("%w: operation %d has unknown op %q", ErrInvalidOperation, i, op.Op)
		}
		if op.Path == "" || !strings.HasPrefix(op.Path, "/") {
			return nil, fmt.Errorf("%w: operation %d has invalid path %q", ErrInvalidOperation, i, op.Path)
		}
	}
	return doc, nil
}

// ApplyTo applies the operations in order to target, which must be a pointer
// to a JSON (un)marshalable struct. Paths match target's JSON field names
// case-insensitively. On error target is left unchanged.
func (d Document) ApplyTo(target any) error {
	if len(d) == 0 {
		return ErrEmptyDocument
	}

	working, err := cloneShape(target)
	if err != nil {
		return err
	}

	original, err := json.Marshal(target)
	if err != nil {
		return fmt.Errorf("failed to marshal patch target: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(original, &fields); err != nil {
		return fmt.Errorf("patch target is not an object: %w", err)
	}

	ops := make(Document, len(d))
	for i, op := range d {
		op.Op = strings.ToLower(op.Op)
		op.Path = resolvePath(op.Path, fields)
		if op.From != "" {
			op.From = resolvePath(op.From, fields)
		}
		ops[i] = op
	}

	raw, err := json.Marshal(ops)
	if err != nil {
		return fmt.Errorf("failed to encode patch: %w", err)
	}
	p, err := jsonpatch.DecodePatch(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOperation, err)
	}

	patched, err := p.Apply(original)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOperation, err)
	}

	// Decode into a zero value so removed fields end up zeroed and a type
	// mismatch leaves target untouched.
	if err := json.Unmarshal(patched, working); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOperation, err)
	}
	reflect.ValueOf(target).Elem().Set(reflect.ValueOf(working).Elem())
	return nil
}

// resolvePath rewrites the first segment of path to the matching field name of
// the target, ignoring case. Unknown segments are kept so the patch reports them.
func resolvePath(path string, fields map[string]json.RawMessage) string {
	segments := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)
	if _, ok := fields[segments[0]]; ok {
		return path
	}
	for name := range fields {
		if strings.EqualFold(name, segments[0]) {
			segments[0] = name
			return "/" + strings.Join(segments, "/")
		}
	}
	return path
}
