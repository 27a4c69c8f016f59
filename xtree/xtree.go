// Package xtree implements a minimal XML element tree with ordered
// attributes. Force-field files care about attribute order (type1 before
// type2, ids before types), which rules out marshaling through maps or
// struct tags, so the tree keeps attributes as an ordered list and
// serializes them in insertion order.
package xtree

import (
	"fmt"
	"io"
	"strings"
)

// Attr is one attribute of an element.
type Attr struct {
	Key   string
	Value string
}

// Element is a node of the document tree. Attribute order is the order
// in which Set was first called for each key.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
}

// New returns a new element with the given tag and no attributes.
func New(tag string) *Element {
	return &Element{Tag: tag}
}

// NewChild appends a new element with the given tag to e and returns it.
func (e *Element) NewChild(tag string) *Element {
	c := New(tag)
	e.Children = append(e.Children, c)
	return c
}

// Set sets the attribute key to value. If the attribute exists its value
// is replaced in place, keeping its position; otherwise it is appended.
func (e *Element) Set(key, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Key == key {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
}

// Get returns the value of the attribute key, or the empty string if the
// element has no such attribute.
func (e *Element) Get(key string) string {
	for i := range e.Attrs {
		if e.Attrs[i].Key == key {
			return e.Attrs[i].Value
		}
	}
	return ""
}

// Equal reports whether e and other are structurally identical: same tag,
// same attribute set (order does not matter for equality, only for
// serialization) and recursively equal children, in order. A nil element
// is only equal to another nil element.
func (e *Element) Equal(other *Element) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Tag != other.Tag {
		return false
	}
	if len(e.Attrs) != len(other.Attrs) {
		return false
	}
	for _, a := range e.Attrs {
		found := false
		for _, b := range other.Attrs {
			if a.Key == b.Key {
				if a.Value != b.Value {
					return false
				}
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(e.Children) != len(other.Children) {
		return false
	}
	for i := range e.Children {
		if !e.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Write serializes the tree rooted at e to w as pretty-printed XML with
// two-space indentation, preceded by an XML declaration.
func (e *Element) Write(w io.Writer) error {
	if _, err := io.WriteString(w, "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n"); err != nil {
		return err
	}
	return e.write(w, 0)
}

func (e *Element) write(w io.Writer, depth int) error {
	ind := strings.Repeat("  ", depth)
	open := make([]string, 0, len(e.Attrs)+1)
	open = append(open, ind+"<"+e.Tag)
	for _, a := range e.Attrs {
		open = append(open, fmt.Sprintf(" %s=\"%s\"", a.Key, escaper.Replace(a.Value)))
	}
	if len(e.Children) == 0 {
		open = append(open, "/>\n")
		_, err := io.WriteString(w, strings.Join(open, ""))
		return err
	}
	open = append(open, ">\n")
	if _, err := io.WriteString(w, strings.Join(open, "")); err != nil {
		return err
	}
	for _, c := range e.Children {
		if err := c.write(w, depth+1); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ind+"</"+e.Tag+">\n")
	return err
}
