// Package layer describes a single network layer parsed from its
// specification string.
//
// Two layer kinds exist:
//   - Linear: affine transform y = W x + b with W of shape [out, in]
//   - Sigma: element-wise activation y_i = sigma(x_i)
//
// Specification strings have the form
//
//	LinLayer :: <in, out>
//	SigmaLayer :: <n>
//
// A parsed Layer is immutable. It knows how many scalar parameters it
// consumes from the network's flat parameter vector and renders its
// formula fragment: one assignment per output neuron, expressed over the
// previous layer's neuron symbols.
//
// Example:
//
//	l, err := layer.Parse("LinLayer :: <2, 1>")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	frag, err := l.Fragment(1, []float64{0.5, 0.5, 1}, 0)
//	// frag == "s_1_0 = (0.5)*s_0_0 + (0.5)*s_0_1 + (1.0);\n"
package layer
