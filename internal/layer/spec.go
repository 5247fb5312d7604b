package layer

import (
	"regexp"
	"strconv"
	"strings"
)

// Specification literals.
const (
	LinearPrefix = "LinLayer"
	SigmaPrefix  = "SigmaLayer"
	Separator    = " :: "
)

// Minimum specification lengths, one digit per count.
const (
	minLinearLen = len(LinearPrefix) + len(Separator) + len("<0, 0>")
	minSigmaLen  = len(SigmaPrefix) + len(Separator) + len("<0>")
	minSpecLen   = min(minLinearLen, minSigmaLen)
)

var (
	linearArgs = regexp.MustCompile(`^<(?P<in>[0-9]+), (?P<out>[0-9]+)>$`)
	sigmaArgs  = regexp.MustCompile(`^<(?P<n>[0-9]+)>$`)
)

// Parse parses a layer specification string.
//
// Accepted forms:
//
//	LinLayer :: <in, out>
//	SigmaLayer :: <n>
//
// Anything else, including extra whitespace, signs or a missing count, fails
// with a *SpecError wrapping ErrBadSpec. Zero counts fail with ErrZeroNeurons.
func Parse(spec string) (Layer, error) {
	if len(spec) < minSpecLen {
		return Layer{}, badSpec(spec, "shorter than %d characters", minSpecLen)
	}

	var (
		kind   Kind
		prefix string
		minLen int
		args   *regexp.Regexp
	)
	switch {
	case strings.HasPrefix(spec, LinearPrefix):
		kind, prefix, minLen, args = Linear, LinearPrefix, minLinearLen, linearArgs
	case strings.HasPrefix(spec, SigmaPrefix):
		kind, prefix, minLen, args = Sigma, SigmaPrefix, minSigmaLen, sigmaArgs
	default:
		return Layer{}, badSpec(spec, "unknown layer type")
	}
	if len(spec) < minLen {
		return Layer{}, badSpec(spec, "%s needs at least %d characters", prefix, minLen)
	}

	body, ok := strings.CutPrefix(spec[len(prefix):], Separator)
	if !ok {
		return Layer{}, badSpec(spec, "expected %q after %s", Separator, prefix)
	}
	if !strings.HasPrefix(body, "<") || !strings.HasSuffix(body, ">") {
		return Layer{}, badSpec(spec, "arguments must be enclosed in <>")
	}

	m := args.FindStringSubmatch(body)
	if m == nil {
		return Layer{}, badSpec(spec, "malformed argument list %s", body)
	}

	switch kind {
	case Linear:
		in, err := parseCount(spec, m[args.SubexpIndex("in")])
		if err != nil {
			return Layer{}, err
		}
		out, err := parseCount(spec, m[args.SubexpIndex("out")])
		if err != nil {
			return Layer{}, err
		}
		return newLayer(Linear, in, out, spec)
	default:
		n, err := parseCount(spec, m[args.SubexpIndex("n")])
		if err != nil {
			return Layer{}, err
		}
		return newLayer(Sigma, n, n, spec)
	}
}

// MustParse is like Parse but panics on error.
// Intended for tests and package-level tables.
func MustParse(spec string) Layer {
	l, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return l
}

func parseCount(spec, digits string) (int, error) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, badSpec(spec, "neuron count %s out of range", digits)
	}
	return n, nil
}
