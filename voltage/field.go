package voltage

import (
	"math"
	"strconv"

	"github.com/viant/ephys"
	"github.com/viant/ephys/metadata"
)

// NoneValue is stored for optional fields absent from the document
const NoneValue = "None"

// field describes where a value lives under a record element and whether it is required
type field struct {
	name     string
	path     string
	required bool
	fallback string
}

var signalFields = []field{
	{name: "Name", path: "Name", required: true},
	{name: "UnitName", path: "Unit/UnitName", required: true},
	{name: "Multiplier", path: "Unit/Multiplier", required: true},
	{name: "Divisor", path: "Unit/Divisor", required: true},
	{name: "PatchClampDevice", path: "Unit/PatchClampDevice", fallback: NoneValue},
	{name: "PatchClampChannel", path: "Unit/PatchClampChannel", fallback: NoneValue},
	{name: "Type", path: "Type", required: true},
	{name: "Gain", path: "Gain", required: true},
	{name: "Channel", path: "Channel", required: true},
	{name: "Enabled", path: "Enabled", required: true},
}

var sessionFields = []field{
	{name: "AcquisitionTime", path: "Experiment/AcquisitionTime", required: true},
	{name: "Rate", path: "Experiment/Rate", required: true},
	{name: "DataFile", path: "DataFile", required: true},
	{name: "DateTime", path: "DateTime", required: true},
}

type values map[string]string

// resolve reads every field under node, applying fallbacks to absent optional fields
func resolve(node metadata.Node, fields []field, recordID string) (values, error) {
	result := make(values, len(fields))
	for _, f := range fields {
		text, ok := metadata.FindText(node, f.path)
		if !ok {
			if f.required {
				return nil, &ephys.MissingFieldError{Field: f.name, Record: recordID}
			}
			text = f.fallback
		}
		result[f.name] = text
	}
	return result, nil
}

func (v values) number(name, recordID string) (float64, error) {
	text := v[name]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &ephys.ConfigurationError{Field: name, Record: recordID, Value: text, Reason: "not a number", Err: err}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &ephys.ConfigurationError{Field: name, Record: recordID, Value: text, Reason: "not a finite number"}
	}
	return value, nil
}

func (v values) integer(name, recordID string) (int, error) {
	text := v[name]
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, &ephys.ConfigurationError{Field: name, Record: recordID, Value: text, Reason: "not an integer", Err: err}
	}
	return value, nil
}
