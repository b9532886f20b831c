package serialization

import (
	"github.com/schollz/deluge-patch/internal/values"
	"github.com/schollz/deluge-patch/internal/xmlkit"
)

// TwinSelector picks which half of an A/B-keyed pair a DefaultParamsTwin
// reads or writes. Oscillator 1's volume lives under the "A" key,
// oscillator 2's under "B", but both are read out of the same shared
// defaultParams node.
type TwinSelector int

const (
	TwinA TwinSelector = iota
	TwinB
)

func (t TwinSelector) key(keyA, keyB string) string {
	if t == TwinB {
		return keyB
	}
	return keyA
}

// DefaultParamsTwin reads a single shared "defaultParams" element, scoped to
// one side of a named twin pair. V1, V2 and V3 documents store osc1/osc2 (and
// carrier/modulator) volumes this way instead of on the oscillator node
// itself.
type DefaultParamsTwin struct {
	Selector TwinSelector
	Source   ParamSource
}

func (d DefaultParamsTwin) getHexU50(keyA, keyB string, def values.HexU50) (values.HexU50, error) {
	return getHexU50(d.Source, d.Selector.key(keyA, keyB), def)
}

// DefaultParamsTwinMut is the write-side mirror: it creates or addresses an
// A/B-keyed child under a shared defaultParams element as it's populated.
type DefaultParamsTwinMut struct {
	Selector TwinSelector
	Sink     WriteSink
}

func (d DefaultParamsTwinMut) setHexU50(keyA, keyB string, v values.HexU50) {
	d.Sink.Set(d.Selector.key(keyA, keyB), v.String())
}

// requiredDefaultParamsNode locates the shared defaultParams node under
// parent, failing when it is absent. No reader in this package calls it:
// the volume and pulse-width reads use optDefaultParamsNode or
// xmlkit.OptChild and fall back to defaults when the node is missing.
func requiredDefaultParamsNode(parent *xmlkit.Element) (*xmlkit.Element, error) {
	return xmlkit.RequiredChild(parent, "defaultParams")
}

func optDefaultParamsNode(parent *xmlkit.Element) *xmlkit.Element {
	return xmlkit.OptChild(parent, "defaultParams")
}
