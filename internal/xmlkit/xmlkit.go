// Package xmlkit provides a uniform, error-shaping view over an in-memory
// XML DOM (github.com/beevik/etree), mirroring the original codec's
// xml.rs helper layer: required/optional child lookup, required/optional
// attribute lookup, and text content access, all surfacing the shared
// serialization error taxonomy rather than generic parse errors.
package xmlkit

import "github.com/beevik/etree"

// Element is re-exported for callers that only need the DOM type, not the
// helpers, to avoid importing etree directly everywhere.
type Element = etree.Element

// Document is re-exported for the same reason.
type Document = etree.Document

// RequiredChild returns the first child element named name, or
// MissingChildError if absent.
func RequiredChild(parent *Element, name string) (*Element, error) {
	child := parent.SelectElement(name)
	if child == nil {
		return nil, &MissingChildError{Parent: parent.Tag, Name: name}
	}
	return child, nil
}

// OptChild returns the first child element named name, or nil. A nil parent
// (an absent optional container such as defaultParams) is treated as having
// no children rather than panicking.
func OptChild(parent *Element, name string) *Element {
	if parent == nil {
		return nil
	}
	return parent.SelectElement(name)
}

// Children returns all child elements named name, in document order. A nil
// parent yields no children.
func Children(parent *Element, name string) []*Element {
	if parent == nil {
		return nil
	}
	return parent.SelectElements(name)
}

// RequiredAttr returns the value of attribute name on el, or
// MissingAttributeError if absent.
func RequiredAttr(el *Element, name string) (string, error) {
	attr := el.SelectAttr(name)
	if attr == nil {
		return "", &MissingAttributeError{Parent: el.Tag, Name: name}
	}
	return attr.Value, nil
}

// OptAttr returns the value of attribute name on el and whether it was
// present. A nil el is treated as having no attributes.
func OptAttr(el *Element, name string) (string, bool) {
	if el == nil {
		return "", false
	}
	attr := el.SelectAttr(name)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}

// Text returns the element's own text content (not including children).
func Text(el *Element) string {
	return el.Text()
}

// RequiredChildText returns the text content of the required child named
// name.
func RequiredChildText(parent *Element, name string) (string, error) {
	child, err := RequiredChild(parent, name)
	if err != nil {
		return "", err
	}
	return Text(child), nil
}

// OptChildText returns the text content of the child named name, and
// whether that child was present.
func OptChildText(parent *Element, name string) (string, bool) {
	child := OptChild(parent, name)
	if child == nil {
		return "", false
	}
	return Text(child), true
}

// RequiredElement finds the first descendant element named name anywhere
// under root (used for top-level root-element lookup: "sound"/"kit").
func RequiredElement(root *Element, name string) (*Element, error) {
	el := root.FindElement(".//" + name)
	if el == nil {
		return nil, &MissingElementError{Name: name}
	}
	return el, nil
}

// OptElement finds the first descendant element named name anywhere under
// root, or nil.
func OptElement(root *Element, name string) *Element {
	return root.FindElement(".//" + name)
}

// CreateChild creates and appends a new child element, returning it for
// further population. The writer-side analogue of RequiredChild.
func CreateChild(parent *Element, name string) *Element {
	return parent.CreateElement(name)
}

// SetAttr sets an attribute, creating or overwriting it.
func SetAttr(el *Element, name, value string) {
	el.CreateAttr(name, value)
}

// SetOptAttr sets an attribute only when present is true.
func SetOptAttr(el *Element, name, value string, present bool) {
	if present {
		SetAttr(el, name, value)
	}
}
