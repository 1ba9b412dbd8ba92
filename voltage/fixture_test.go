package voltage

import (
	"github.com/viant/ephys/metadata"
)

func signalNode(name string, extra ...metadata.Node) *metadata.Element {
	children := []metadata.Node{
		metadata.Leaf("Name", name),
		metadata.NewElement("Unit", "",
			metadata.Leaf("UnitName", "mV"),
			metadata.Leaf("Multiplier", "100"),
			metadata.Leaf("Divisor", "1"),
		),
		metadata.Leaf("Type", "Voltage"),
		metadata.Leaf("Gain", "1"),
		metadata.Leaf("Channel", "0"),
		metadata.Leaf("Enabled", "true"),
	}
	return metadata.NewElement(SignalTag, "", append(children, extra...)...)
}

// without returns a copy of element children lacking the given tag at the top level
func without(element *metadata.Element, tag string) *metadata.Element {
	var children []metadata.Node
	for _, child := range element.Children() {
		if child.Tag() == tag {
			continue
		}
		children = append(children, child)
	}
	return metadata.NewElement(element.Tag(), "", children...)
}

func recordingRoot(signals ...metadata.Node) *metadata.Element {
	return metadata.NewElement("VRecSessionEntry", "",
		metadata.Leaf("DataFile", "TSeries-001_Cycle00001_VoltageRecording_001.csv"),
		metadata.Leaf("DateTime", "2019-05-01T14:23:11.1234567-07:00"),
		metadata.NewElement("Experiment", "",
			metadata.Leaf("AcquisitionTime", "60000"),
			metadata.Leaf("Rate", "10000"),
		),
		metadata.NewElement("SignalList", "", signals...),
	)
}

func outputChannel(name string, extra ...metadata.Node) *metadata.Element {
	children := []metadata.Node{metadata.Leaf("Name", name), metadata.Leaf("Enabled", "true")}
	return metadata.NewElement("PVOutputChannel", "", append(children, extra...)...)
}

func pulseComponent(tag string) *metadata.Element {
	return metadata.NewElement(tag, "",
		metadata.Leaf("Name", "Pulse"),
		metadata.Leaf("PulseCount", "5"),
		metadata.Leaf("PulseAmplitude", "-10"),
	)
}
