// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package formula turns a trained feed-forward network description into
// explicit scalar formulas.
//
// # Overview
//
// A network is a list of layer specification strings plus a flat parameter
// vector. Every output neuron of every layer becomes one assignment over the
// previous layer's neuron symbols:
//
//	s_1_0 = (0.5)*s_0_0 + (0.5)*s_0_1 + (1.0);
//
//	s_2_0 = sigma(s_1_0);
//
// s_<layer>_<neuron> names neuron <neuron> of layer <layer>; layer 0 is the
// network input.
//
// # Basic Usage
//
//	doc, err := formula.Load("net.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	net, err := doc.Network()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := net.Generate(os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// # Layers
//
// LinLayer :: <in, out>: affine transform, in*out row-major weights then out biases
//
// SigmaLayer :: <n>: element-wise activation, no parameters
package formula

import (
	"bytes"

	"github.com/born-ml/netformula/internal/document"
	"github.com/born-ml/netformula/internal/layer"
	"github.com/born-ml/netformula/internal/network"
)

// Layer is a parsed layer specification.
type Layer = layer.Layer

// Kind identifies the layer variant.
type Kind = layer.Kind

// Layer kinds.
const (
	Linear Kind = layer.Linear
	Sigma  Kind = layer.Sigma
)

// Network is an ordered list of layers bound to a flat parameter list.
type Network = network.Network

// Option configures a Network.
type Option = network.Option

// LayerInfo describes one layer's place in a Network.
type LayerInfo = network.LayerInfo

// Document is a decoded network description.
type Document = document.Document

// Errors returned by this package.
var (
	ErrBadSpec            = layer.ErrBadSpec
	ErrZeroNeurons        = layer.ErrZeroNeurons
	ErrParamCountMismatch = network.ErrParamCountMismatch
	ErrArityMismatch      = network.ErrArityMismatch
	ErrMalformed          = document.ErrMalformed
)

// ParseLayer parses a layer specification string such as "LinLayer :: <2, 1>".
func ParseLayer(spec string) (Layer, error) {
	return layer.Parse(spec)
}

// NewNetwork parses specs and binds them to params.
func NewNetwork(specs []string, params []float64, opts ...Option) (*Network, error) {
	return network.FromSpecs(specs, params, opts...)
}

// WithSigmaName sets the activation function name used by Sigma layers.
func WithSigmaName(name string) Option {
	return network.WithSigmaName(name)
}

// WithStrictArity requires adjacent layers to agree on neuron counts.
func WithStrictArity() Option {
	return network.WithStrictArity()
}

// Load reads a YAML (or JSON) network description from path.
func Load(path string) (*Document, error) {
	return document.Load(path)
}

// Generate returns the formulas for the given layers and parameters.
//
// Example:
//
//	text, err := formula.Generate(
//	    []string{"LinLayer :: <2, 1>", "SigmaLayer :: <1>"},
//	    []float64{0.5, 0.5, 1.0},
//	)
func Generate(specs []string, params []float64, opts ...Option) (string, error) {
	n, err := network.FromSpecs(specs, params, opts...)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := n.Generate(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
