package metadata

import "strings"

// Node is a read-only view of a metadata document element
type Node interface {
	// Tag returns the element name
	Tag() string
	// Text returns the element character data
	Text() string
	// Attr returns the named attribute value
	Attr(name string) (string, bool)
	// Children returns child elements in document order
	Children() []Node
}

// Element is an in-memory Node, used to build trees by hand
type Element struct {
	tag      string
	text     string
	attrs    map[string]string
	children []Node
}

func (e *Element) Tag() string {
	return e.tag
}

func (e *Element) Text() string {
	return e.text
}

func (e *Element) Attr(name string) (string, bool) {
	value, ok := e.attrs[name]
	return value, ok
}

func (e *Element) Children() []Node {
	return e.children
}

// WithAttr sets an attribute and returns the element
func (e *Element) WithAttr(name, value string) *Element {
	if e.attrs == nil {
		e.attrs = map[string]string{}
	}
	e.attrs[name] = value
	return e
}

// NewElement creates an element with optional children
func NewElement(tag, text string, children ...Node) *Element {
	return &Element{tag: tag, text: text, children: children}
}

// Leaf creates a childless element holding text
func Leaf(tag, text string) *Element {
	return &Element{tag: tag, text: text}
}

// Find returns the first node reached by following a slash separated tag path from node
func Find(node Node, path string) Node {
	if node == nil {
		return nil
	}
	current := node
outer:
	for _, segment := range strings.Split(strings.Trim(path, "/"), "/") {
		if segment == "" || segment == "." {
			continue
		}
		for _, child := range current.Children() {
			if child.Tag() == segment {
				current = child
				continue outer
			}
		}
		return nil
	}
	return current
}

// FindAll returns all descendants of node with the given tag, in document order
func FindAll(node Node, tag string) []Node {
	if node == nil {
		return nil
	}
	var result []Node
	for _, child := range node.Children() {
		if child.Tag() == tag {
			result = append(result, child)
		}
		result = append(result, FindAll(child, tag)...)
	}
	return result
}

// FindText returns trimmed text of the node at path
func FindText(node Node, path string) (string, bool) {
	found := Find(node, path)
	if found == nil {
		return "", false
	}
	return strings.TrimSpace(found.Text()), true
}
