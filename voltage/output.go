package voltage

import (
	"fmt"

	"github.com/viant/ephys"
	"github.com/viant/ephys/metadata"
)

// NameField is the field every output channel record carries
const NameField = "Name"

// Channel represents one configured output channel of the VoltageOutput document
type Channel struct {
	Name   string
	Fields *metadata.Record // flattened channel element
}

// ParseOutput returns output channels of a VoltageOutput document root in document order
func ParseOutput(root metadata.Node) ([]*Channel, error) {
	if root == nil {
		return nil, fmt.Errorf("voltage output document has no root")
	}
	records := metadata.FlattenChildren(root)
	channels := make([]*Channel, 0, len(records))
	for i, record := range records {
		name, ok := record.Text(NameField)
		if !ok {
			return nil, &ephys.MissingFieldError{Field: NameField, Record: fmt.Sprintf("output channel %d", i+1)}
		}
		channels = append(channels, &Channel{Name: name, Fields: record})
	}
	return channels, nil
}
