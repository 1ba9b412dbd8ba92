package metadata

import "strings"

// Flatten converts node children into a record: a childless child maps to its text,
// any other child maps to its own flattened record. Children flattening to nothing are
// dropped; a node without any entry flattens to nil, never to an empty record.
// Repeated tags overwrite the earlier value and keep the earlier position.
func Flatten(node Node) *Record {
	if node == nil {
		return nil
	}
	record := &Record{}
	for _, child := range node.Children() {
		if len(child.Children()) == 0 {
			record.set(child.Tag(), Value{text: strings.TrimSpace(child.Text())})
			continue
		}
		if nested := Flatten(child); nested != nil {
			record.set(child.Tag(), Value{record: nested})
		}
	}
	if record.Len() == 0 {
		return nil
	}
	return record
}

// FlattenChildren flattens each child of root, skipping children that flatten to nothing
func FlattenChildren(root Node) []*Record {
	if root == nil {
		return nil
	}
	var result []*Record
	for _, child := range root.Children() {
		if record := Flatten(child); record != nil {
			result = append(result, record)
		}
	}
	return result
}
