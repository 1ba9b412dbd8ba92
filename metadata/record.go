package metadata

import (
	"gopkg.in/yaml.v3"
)

// Value holds either scalar text or a nested record
type Value struct {
	text   string
	record *Record
}

// IsRecord reports whether value is a nested record
func (v Value) IsRecord() bool {
	return v.record != nil
}

// Text returns scalar text, empty for nested records
func (v Value) Text() string {
	return v.text
}

// Record returns nested record or nil for scalars
func (v Value) Record() *Record {
	return v.record
}

// Record represents a flattened metadata element; keys keep document order
type Record struct {
	keys   []string
	values map[string]Value
}

func (r *Record) set(key string, value Value) {
	if r.values == nil {
		r.values = map[string]Value{}
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Len returns number of fields
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Keys returns field names in document order
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	return append([]string{}, r.keys...)
}

// Get returns a field value
func (r *Record) Get(key string) (Value, bool) {
	if r == nil {
		return Value{}, false
	}
	value, ok := r.values[key]
	return value, ok
}

// Text returns scalar field text, ok is false for missing or nested fields
func (r *Record) Text(key string) (string, bool) {
	value, ok := r.Get(key)
	if !ok || value.IsRecord() {
		return "", false
	}
	return value.text, true
}

// Record returns nested field record or nil
func (r *Record) Record(key string) *Record {
	value, _ := r.Get(key)
	return value.record
}

// Lookup follows nested record keys and returns the value at the last one
func (r *Record) Lookup(path ...string) (Value, bool) {
	current := r
	for i, key := range path {
		value, ok := current.Get(key)
		if !ok {
			return Value{}, false
		}
		if i == len(path)-1 {
			return value, true
		}
		if current = value.record; current == nil {
			return Value{}, false
		}
	}
	return Value{}, false
}

// Map returns the record as nested plain maps
func (r *Record) Map() map[string]interface{} {
	if r == nil {
		return nil
	}
	result := make(map[string]interface{}, len(r.keys))
	for _, key := range r.keys {
		value := r.values[key]
		if value.record != nil {
			result[key] = value.record.Map()
			continue
		}
		result[key] = value.text
	}
	return result
}

// Equal reports whether both records hold the same fields in the same order
func (r *Record) Equal(other *Record) bool {
	if r.Len() != other.Len() {
		return false
	}
	for i, key := range r.Keys() {
		if other.keys[i] != key {
			return false
		}
		value, otherValue := r.values[key], other.values[key]
		if value.IsRecord() != otherValue.IsRecord() {
			return false
		}
		if value.IsRecord() {
			if !value.record.Equal(otherValue.record) {
				return false
			}
			continue
		}
		if value.text != otherValue.text {
			return false
		}
	}
	return true
}

// Node exposes the record as a tree rooted at an element with the given tag
func (r *Record) Node(tag string) Node {
	return &recordNode{tag: tag, record: r}
}

// MarshalYAML encodes the record as a mapping preserving field order
func (r *Record) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if r == nil {
		return node, nil
	}
	for _, key := range r.keys {
		value := r.values[key]
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		if value.record == nil {
			node.Content = append(node.Content, keyNode, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value.text})
			continue
		}
		nested, err := value.record.MarshalYAML()
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, nested.(*yaml.Node))
	}
	return node, nil
}

type recordNode struct {
	tag    string
	record *Record
}

func (n *recordNode) Tag() string {
	return n.tag
}

func (n *recordNode) Text() string {
	return ""
}

func (n *recordNode) Attr(string) (string, bool) {
	return "", false
}

func (n *recordNode) Children() []Node {
	children := make([]Node, 0, n.record.Len())
	for _, key := range n.record.Keys() {
		value := n.record.values[key]
		if value.record != nil {
			children = append(children, value.record.Node(key))
			continue
		}
		children = append(children, Leaf(key, value.text))
	}
	return children
}
