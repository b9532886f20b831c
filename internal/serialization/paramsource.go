package serialization

import "github.com/schollz/deluge-patch/internal/xmlkit"

// ParamSource abstracts over "where does a scalar's wire text live": a V1/V2
// child element's text content, or a V3 attribute. Every section reader in
// this package (envelopes, LFOs, unison, distortion, equalizer, modulation
// FX, arpeggiator, sidechain) is written once against this interface and
// shared across all three format versions, instead of duplicating each
// reader per version. The patch cable and mod knob readers take the parent
// element instead and read the attributes of its child elements.
type ParamSource interface {
	// Get returns the raw text for name and whether it was present.
	Get(name string) (string, bool)
	// Element returns the underlying element this source reads from, for
	// callers that need to look up nested children directly.
	Element() *xmlkit.Element
}

// ChildTextSource reads scalars from V1/V2 child-element text content.
type ChildTextSource struct {
	El *xmlkit.Element
}

func (c ChildTextSource) Get(name string) (string, bool) {
	return xmlkit.OptChildText(c.El, name)
}

func (c ChildTextSource) Element() *xmlkit.Element { return c.El }

// AttrSource reads scalars from V3 attributes.
type AttrSource struct {
	El *xmlkit.Element
}

func (a AttrSource) Get(name string) (string, bool) {
	return xmlkit.OptAttr(a.El, name)
}

func (a AttrSource) Element() *xmlkit.Element { return a.El }

// WriteSink is the write-side mirror of ParamSource: it accepts scalars
// either as attributes (V3's only form) or would-be child elements. The
// writer always targets V3, so the only concrete implementation is
// AttrSink, but the interface keeps section writers symmetrical with their
// section readers.
type WriteSink interface {
	Set(name, value string)
	Element() *xmlkit.Element
}

// AttrSink writes scalars as attributes on the underlying element.
type AttrSink struct {
	El *xmlkit.Element
}

func (a AttrSink) Set(name, value string) {
	xmlkit.SetAttr(a.El, name, value)
}

func (a AttrSink) Element() *xmlkit.Element { return a.El }
