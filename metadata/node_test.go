package metadata

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

const recordingDocument = `<?xml version="1.0" encoding="utf-8"?>
<VRecSessionEntry>
  <DataFile>session_VoltageRecording_001.csv</DataFile>
  <DateTime>2019-05-01T14:23:11.1234567-07:00</DateTime>
  <Experiment>
    <AcquisitionTime>60000</AcquisitionTime>
    <Rate>10000</Rate>
  </Experiment>
  <SignalList>
    <VRecSignal><Name>Primary</Name></VRecSignal>
    <VRecSignal><Name>Secondary</Name></VRecSignal>
  </SignalList>
</VRecSessionEntry>`

func TestFind(t *testing.T) {
	root, err := Parse([]byte(recordingDocument))
	require.NoError(t, err)

	tests := []struct {
		description string
		path        string
		expect      string
		found       bool
	}{
		{description: "direct child", path: "DataFile", expect: "session_VoltageRecording_001.csv", found: true},
		{description: "nested path", path: "Experiment/Rate", expect: "10000", found: true},
		{description: "missing path", path: "Experiment/Gain", found: false},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			actual, ok := FindText(root, tc.path)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expect, actual)
		})
	}
}

func TestFindAll(t *testing.T) {
	root, err := Parse([]byte(recordingDocument))
	require.NoError(t, err)
	signals := FindAll(root, "VRecSignal")
	require.Len(t, signals, 2)
	name, _ := FindText(signals[1], "Name")
	assert.Equal(t, "Secondary", name)
}

func TestParse_Attributes(t *testing.T) {
	root, err := Parse([]byte(`<PVScan version="5.7.64.300" date="5/1/2019"><Sequence type="VoltageRecording"/></PVScan>`))
	require.NoError(t, err)
	version, ok := root.Attr("version")
	assert.True(t, ok)
	assert.Equal(t, "5.7.64.300", version)
	_, ok = root.Attr("missing")
	assert.False(t, ok)
	seqType, _ := FindAll(root, "Sequence")[0].Attr("type")
	assert.Equal(t, "VoltageRecording", seqType)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte(""))
	assert.Error(t, err)
}

func TestReadDocument(t *testing.T) {
	location := filepath.Join(t.TempDir(), "recording.xml")
	require.NoError(t, os.WriteFile(location, []byte(recordingDocument), 0o644))
	root, err := ReadDocument(context.Background(), afs.New(), location)
	require.NoError(t, err)
	assert.Equal(t, "VRecSessionEntry", root.Tag())

	_, err = ReadDocument(context.Background(), afs.New(), filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}
