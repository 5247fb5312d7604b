// Package network assembles parsed layers and a flat parameter list into the
// formulas of a whole feed-forward network.
//
// Layers are numbered from 1; layer 0 is the network input and is never
// materialized. Each layer reads a contiguous slice of the parameter list
// starting where the previous layer's slice ended.
package network

import (
	"bytes"
	"fmt"
	"io"

	"github.com/born-ml/netformula/internal/layer"
)

type state int

const (
	unvalidated state = iota
	validated
	spent
)

// Option configures a Network.
type Option func(*Network)

// WithSigmaName sets the activation function name used by Sigma layers.
func WithSigmaName(name string) Option {
	return func(n *Network) {
		n.sigma = name
	}
}

// WithStrictArity makes validation require every layer's input count to
// equal the previous layer's output count.
func WithStrictArity() Option {
	return func(n *Network) {
		n.strict = true
	}
}

// Network owns an ordered list of layers and their flat parameter list.
//
// A Network is single use: Validate, then Generate once.
type Network struct {
	layers []layer.Layer
	params []float64
	sigma  string
	strict bool
	state  state
}

// New creates a Network over the given layers and parameters.
// Neither slice is copied or modified.
func New(layers []layer.Layer, params []float64, opts ...Option) *Network {
	n := &Network{
		layers: layers,
		params: params,
		sigma:  layer.DefaultSigmaName,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// FromSpecs parses each specification string in order and creates a Network.
// Parsing stops at the first bad specification.
func FromSpecs(specs []string, params []float64, opts ...Option) (*Network, error) {
	layers := make([]layer.Layer, 0, len(specs))
	for i, spec := range specs {
		l, err := layer.Parse(spec)
		if err != nil {
			return nil, &LayerError{Index: i + 1, Spec: spec, Err: err}
		}
		layers = append(layers, l)
	}
	return New(layers, params, opts...), nil
}

// Layers returns the network's layers.
func (n *Network) Layers() []layer.Layer {
	return n.layers
}

// ParamsCount returns the number of parameters the layers require.
func (n *Network) ParamsCount() int {
	total := 0
	for _, l := range n.layers {
		total += l.ParamsCount()
	}
	return total
}

// Validate checks that the parameter list holds exactly as many values as the
// layers consume (and, in strict mode, that adjacent layers agree on arity).
func (n *Network) Validate() error {
	if n.state != unvalidated {
		return nil
	}

	if want := n.ParamsCount(); want != len(n.params) {
		return &MismatchError{Want: want, Got: len(n.params)}
	}

	if n.strict {
		for i := 1; i < len(n.layers); i++ {
			prev, cur := n.layers[i-1], n.layers[i]
			if cur.NeuronsIn() != prev.NeuronsOut() {
				return &LayerError{
					Index: i + 1,
					Spec:  cur.String(),
					Err: fmt.Errorf("%w: expects %d inputs, previous layer has %d outputs",
						ErrArityMismatch, cur.NeuronsIn(), prev.NeuronsOut()),
				}
			}
		}
	}

	n.state = validated
	return nil
}

// Generate writes the formulas of every layer to w, in layer order, each
// layer's block followed by a blank line.
//
// Nothing is written unless all formulas were produced. Generate may only
// succeed once per Network; later calls return ErrSpent.
func (n *Network) Generate(w io.Writer) error {
	if n.state == spent {
		return ErrSpent
	}
	if err := n.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	offset := 0
	for i, l := range n.layers {
		frag, err := l.FragmentWith(i+1, n.params, offset, n.sigma)
		if err != nil {
			return &LayerError{Index: i + 1, Spec: l.String(), Err: err}
		}
		buf.WriteString(frag)
		buf.WriteByte('\n')
		offset += l.ParamsCount()
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write formulas: %w", err)
	}
	n.state = spent
	return nil
}

// LayerInfo describes one layer's place in the network.
type LayerInfo struct {
	Index       int        // 1-based layer index
	Kind        layer.Kind // Layer variant
	NeuronsIn   int
	NeuronsOut  int
	ParamsCount int // Parameters consumed by the layer
	Offset      int // Index of the layer's first parameter
}

// Summary returns the position, arity and parameter slice of every layer.
func (n *Network) Summary() []LayerInfo {
	infos := make([]LayerInfo, len(n.layers))
	offset := 0
	for i, l := range n.layers {
		infos[i] = LayerInfo{
			Index:       i + 1,
			Kind:        l.Kind(),
			NeuronsIn:   l.NeuronsIn(),
			NeuronsOut:  l.NeuronsOut(),
			ParamsCount: l.ParamsCount(),
			Offset:      offset,
		}
		offset += l.ParamsCount()
	}
	return infos
}
