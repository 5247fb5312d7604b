package layer

import "fmt"

// Kind identifies the layer variant.
type Kind int

const (
	// Linear is an affine transform with a weight matrix and a bias vector.
	Linear Kind = iota
	// Sigma applies the activation function to each input independently.
	Sigma
)

// String returns the specification prefix of the kind.
func (k Kind) String() string {
	switch k {
	case Linear:
		return LinearPrefix
	case Sigma:
		return SigmaPrefix
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Layer is an immutable layer descriptor.
//
// The zero value is not a valid layer; use Parse or NewLinear/NewSigma.
type Layer struct {
	kind       Kind
	neuronsIn  int
	neuronsOut int
}

// NewLinear creates a Linear layer mapping in inputs to out outputs.
func NewLinear(in, out int) (Layer, error) {
	return newLayer(Linear, in, out, fmt.Sprintf("%s%s<%d, %d>", LinearPrefix, Separator, in, out))
}

// NewSigma creates a Sigma layer over n neurons.
func NewSigma(n int) (Layer, error) {
	return newLayer(Sigma, n, n, fmt.Sprintf("%s%s<%d>", SigmaPrefix, Separator, n))
}

func newLayer(kind Kind, in, out int, spec string) (Layer, error) {
	if in <= 0 || out <= 0 {
		return Layer{}, &SpecError{
			Spec:   spec,
			Reason: fmt.Sprintf("got %d inputs and %d outputs", in, out),
			Err:    ErrZeroNeurons,
		}
	}
	if kind == Linear && !fitsParams(in, out) {
		return Layer{}, badSpec(spec, "parameter count overflows")
	}
	return Layer{kind: kind, neuronsIn: in, neuronsOut: out}, nil
}

// fitsParams reports whether in*out + out is representable as an int.
func fitsParams(in, out int) bool {
	const maxInt = int(^uint(0) >> 1)
	return in <= (maxInt-out)/out
}

// Kind returns the layer variant.
func (l Layer) Kind() Kind { return l.kind }

// NeuronsIn returns the number of input symbols the layer consumes.
func (l Layer) NeuronsIn() int { return l.neuronsIn }

// NeuronsOut returns the number of output symbols the layer produces.
func (l Layer) NeuronsOut() int { return l.neuronsOut }

// ParamsCount returns how many entries of the flat parameter list the layer
// consumes: in*out weights followed by out biases for Linear, none for Sigma.
func (l Layer) ParamsCount() int {
	switch l.kind {
	case Linear:
		return l.neuronsIn*l.neuronsOut + l.neuronsOut
	case Sigma:
		return 0
	default:
		panic(fmt.Sprintf("layer.ParamsCount: unknown kind %v", l.kind))
	}
}

// String returns the specification string the layer parses from.
func (l Layer) String() string {
	switch l.kind {
	case Linear:
		return fmt.Sprintf("%s%s<%d, %d>", LinearPrefix, Separator, l.neuronsIn, l.neuronsOut)
	case Sigma:
		return fmt.Sprintf("%s%s<%d>", SigmaPrefix, Separator, l.neuronsOut)
	default:
		return l.kind.String()
	}
}
