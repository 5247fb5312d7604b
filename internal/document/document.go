// Package document reads a trained network description.
//
// A document is a YAML mapping with two required keys:
//
//	layers:
//	  - "LinLayer :: <2, 1>"
//	  - "SigmaLayer :: <1>"
//	params: [0.5, 0.5, 1.0]
//
// JSON input is accepted since it is valid YAML.
package document

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/netformula/internal/network"
)

// ErrMalformed reports a document without the required structure.
var ErrMalformed = errors.New("malformed data")

// Document is a decoded network description.
type Document struct {
	Layers []string  // Layer specification strings, in network order
	Params []float64 // Flat parameter list
}

// raw keeps the nodes so a missing key can be told apart from an empty one.
type raw struct {
	Layers yaml.Node `yaml:"layers"`
	Params yaml.Node `yaml:"params"`
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode decodes a document from r.
func Decode(r io.Reader) (*Document, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	top := &root
	if top.Kind == yaml.DocumentNode && len(top.Content) == 1 {
		top = top.Content[0]
	}
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level is not a mapping", ErrMalformed)
	}

	var fields raw
	if err := top.Decode(&fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	doc := &Document{}
	if err := decodeList(&fields.Layers, "layers", &doc.Layers); err != nil {
		return nil, err
	}
	if err := decodeList(&fields.Params, "params", &doc.Params); err != nil {
		return nil, err
	}
	return doc, nil
}

// decodeList decodes a required sequence. A null value is an empty list.
func decodeList[T any](node *yaml.Node, key string, out *[]T) error {
	switch {
	case node.Kind == 0:
		return fmt.Errorf("%w: missing %q", ErrMalformed, key)
	case node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null":
		*out = []T{}
		return nil
	case node.Kind != yaml.SequenceNode:
		return fmt.Errorf("%w: %q must be a list", ErrMalformed, key)
	}

	list := make([]T, 0, len(node.Content))
	if err := node.Decode(&list); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrMalformed, key, err)
	}
	*out = list
	return nil
}

// Network parses the document's layers and builds a Network over its params.
func (d *Document) Network(opts ...network.Option) (*network.Network, error) {
	return network.FromSpecs(d.Layers, d.Params, opts...)
}
