package user

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Record is a single user entry.
type Record struct {
	Name        string
	DateOfBirth string

	// raw holds the source object; nil for records built in code.
	raw []byte
}

// Collection is an ordered sequence of records as returned by a source.
type Collection []Record

// New builds a record that has no source document.
func New(name, dateOfBirth string) Record {
	return Record{Name: name, DateOfBirth: dateOfBirth}
}

// UnmarshalJSON accepts any JSON object. Non-string name or dateOfBirth values
// decode to the empty string, which later fails date validation.
func (r *Record) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return fmt.Errorf("%w: %v", ErrNotObject, err)
	}
	if fields == nil {
		return ErrNotObject
	}

	*r = Record{
		Name:        stringField(fields["name"]),
		DateOfBirth: stringField(fields["dateOfBirth"]),
		raw:         bytes.Clone(b),
	}
	return nil
}

// MarshalJSON re-emits the source object when there is one.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.raw != nil {
		return r.raw, nil
	}
	return json.Marshal(struct {
		Name        string `json:"name"`
		DateOfBirth string `json:"dateOfBirth"`
	}{r.Name, r.DateOfBirth})
}

// MarshalYAML converts the source object to a block-style YAML mapping,
// keeping key order.
func (r Record) MarshalYAML() (any, error) {
	b, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, ErrNotObject
	}
	node := doc.Content[0]
	blockStyle(node)
	return node, nil
}

// Names returns the record names in collection order.
func (c Collection) Names() []string {
	names := make([]string, len(c))
	for i, r := range c {
		names[i] = r.Name
	}
	return names
}

func stringField(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// blockStyle clears the flow and quoting styles implied by the JSON input.
// The encoder still quotes strings that would otherwise re-read as another type.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
