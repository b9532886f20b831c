package xmlkit

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, xml string) *Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(xml))
	return &doc.Element
}

func TestRequiredChildFound(t *testing.T) {
	root := mustParse(t, `<a><b>hi</b></a>`)
	a := root.SelectElement("a")
	b, err := RequiredChild(a, "b")
	require.NoError(t, err)
	assert.Equal(t, "hi", Text(b))
}

func TestRequiredChildMissing(t *testing.T) {
	root := mustParse(t, `<a></a>`)
	a := root.SelectElement("a")
	_, err := RequiredChild(a, "b")
	require.Error(t, err)
	var missing *MissingChildError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, "a", missing.Parent)
	assert.Equal(t, "b", missing.Name)
}

func TestOptChildOnNilParentIsNil(t *testing.T) {
	assert.Nil(t, OptChild(nil, "anything"))
}

func TestOptAttrOnNilElementIsAbsent(t *testing.T) {
	v, ok := OptAttr(nil, "anything")
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestRequiredAttrFound(t *testing.T) {
	root := mustParse(t, `<a x="1"/>`)
	a := root.SelectElement("a")
	v, err := RequiredAttr(a, "x")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}

func TestRequiredAttrMissing(t *testing.T) {
	root := mustParse(t, `<a/>`)
	a := root.SelectElement("a")
	_, err := RequiredAttr(a, "x")
	require.Error(t, err)
	var missing *MissingAttributeError
	assert.ErrorAs(t, err, &missing)
}

func TestRequiredElementSearchesDescendants(t *testing.T) {
	root := mustParse(t, `<outer><middle><sound mode="subtractive"/></middle></outer>`)
	el, err := RequiredElement(root, "sound")
	require.NoError(t, err)
	assert.Equal(t, "subtractive", el.SelectAttrValue("mode", ""))
}

func TestRequiredElementMissing(t *testing.T) {
	root := mustParse(t, `<outer/>`)
	_, err := RequiredElement(root, "sound")
	require.Error(t, err)
	var missing *MissingElementError
	assert.ErrorAs(t, err, &missing)
}

func TestChildrenReturnsAllMatches(t *testing.T) {
	root := mustParse(t, `<a><b>1</b><b>2</b><c>3</c></a>`)
	a := root.SelectElement("a")
	bs := Children(a, "b")
	require.Len(t, bs, 2)
	assert.Equal(t, "1", Text(bs[0]))
	assert.Equal(t, "2", Text(bs[1]))
}

func TestChildrenOnNilParentIsNil(t *testing.T) {
	assert.Nil(t, Children(nil, "b"))
}

func TestCreateChildAndSetAttrRoundTrip(t *testing.T) {
	doc := etree.NewDocument()
	root := doc.CreateElement("root")
	child := CreateChild(root, "item")
	SetAttr(child, "name", "value")
	v, ok := OptAttr(child, "name")
	assert.True(t, ok)
	assert.Equal(t, "value", v)
}

func TestSetOptAttrOnlySetsWhenPresent(t *testing.T) {
	doc := etree.NewDocument()
	el := doc.CreateElement("item")
	SetOptAttr(el, "x", "1", false)
	_, ok := OptAttr(el, "x")
	assert.False(t, ok)

	SetOptAttr(el, "x", "1", true)
	v, ok := OptAttr(el, "x")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestOptChildTextReportsPresence(t *testing.T) {
	root := mustParse(t, `<a><b>hello</b></a>`)
	a := root.SelectElement("a")
	v, ok := OptChildText(a, "b")
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	_, ok = OptChildText(a, "missing")
	assert.False(t, ok)
}
