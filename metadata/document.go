package metadata

import (
	"context"
	"fmt"

	"github.com/beevik/etree"
	"github.com/viant/afs"
)

type etreeNode struct {
	element *etree.Element
}

func (n *etreeNode) Tag() string {
	return n.element.Tag
}

func (n *etreeNode) Text() string {
	return n.element.Text()
}

func (n *etreeNode) Attr(name string) (string, bool) {
	attr := n.element.SelectAttr(name)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}

func (n *etreeNode) Children() []Node {
	elements := n.element.ChildElements()
	children := make([]Node, 0, len(elements))
	for _, element := range elements {
		children = append(children, &etreeNode{element: element})
	}
	return children
}

// FromEtree wraps an etree element as Node
func FromEtree(element *etree.Element) Node {
	if element == nil {
		return nil
	}
	return &etreeNode{element: element}
}

// Parse parses markup content and returns the document root
func Parse(data []byte) (Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	return FromEtree(root), nil
}

// ReadDocument downloads and parses a markup document from the backing store
func ReadDocument(ctx context.Context, fs afs.Service, URL string) (Node, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", URL, err)
	}
	root, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", URL, err)
	}
	return root, nil
}
