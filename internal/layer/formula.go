package layer

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// DefaultSigmaName is the activation function name used in Sigma fragments.
const DefaultSigmaName = "sigma"

// Symbol returns the name of neuron i of layer l. Layer 0 is the network input.
func Symbol(l, i int) string {
	return "s_" + strconv.Itoa(l) + "_" + strconv.Itoa(i)
}

// FormatParam renders a parameter as a numeric literal.
//
// The shortest text that parses back to v is used. Integral values keep a
// trailing ".0" so they still read as reals.
func FormatParam(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eInN") {
		s += ".0"
	}
	return s
}

// Fragment renders the formulas of the layer at position index (1-based)
// using the sigma function name DefaultSigmaName.
//
// The layer reads params[offset : offset+ParamsCount()] and nothing else.
func (l Layer) Fragment(index int, params []float64, offset int) (string, error) {
	return l.FragmentWith(index, params, offset, DefaultSigmaName)
}

// FragmentWith is like Fragment with an explicit activation function name.
func (l Layer) FragmentWith(index int, params []float64, offset int, sigma string) (string, error) {
	if index < 1 {
		return "", fmt.Errorf("%w: got %d", ErrBadIndex, index)
	}
	if l.neuronsIn <= 0 || l.neuronsOut <= 0 {
		return "", fmt.Errorf("%w: uninitialized layer", ErrZeroNeurons)
	}
	n := l.ParamsCount()
	if offset < 0 || offset > len(params) || n > len(params)-offset {
		return "", fmt.Errorf("%w: %s needs %d parameters at offset %d, have %d",
			ErrParamsOutOfRange, l, n, offset, len(params))
	}

	var sb strings.Builder
	switch l.kind {
	case Linear:
		l.linearFragment(&sb, index, params[offset:offset+n])
	case Sigma:
		for i := 0; i < l.neuronsOut; i++ {
			sb.WriteString(Symbol(index, i))
			sb.WriteString(" = ")
			sb.WriteString(sigma)
			sb.WriteString("(")
			sb.WriteString(Symbol(index-1, i))
			sb.WriteString(");\n")
		}
	default:
		panic(fmt.Sprintf("layer.Fragment: unknown kind %v", l.kind))
	}
	return sb.String(), nil
}

// linearFragment writes one affine formula per output neuron.
// p holds the layer's own parameters: weights row-major, then biases.
func (l Layer) linearFragment(sb *strings.Builder, index int, p []float64) {
	in, out := l.neuronsIn, l.neuronsOut
	weights := mat.NewDense(out, in, p[:in*out])
	biases := mat.NewVecDense(out, p[in*out:])

	for i := 0; i < out; i++ {
		sb.WriteString(Symbol(index, i))
		sb.WriteString(" = ")
		for j := 0; j < in; j++ {
			if j > 0 {
				sb.WriteString(" + ")
			}
			sb.WriteString("(")
			sb.WriteString(FormatParam(weights.At(i, j)))
			sb.WriteString(")*")
			sb.WriteString(Symbol(index-1, j))
		}
		sb.WriteString(" + (")
		sb.WriteString(FormatParam(biases.AtVec(i)))
		sb.WriteString(");\n")
	}
}
