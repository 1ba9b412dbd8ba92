package recording

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

func TestDetector_Discover(t *testing.T) {
	dir := t.TempDir()
	writeSession(t, dir, sessionFixture{})
	write(t, filepath.Join(dir, "TSeries-9_Cycle00001_VoltageRecording_001.csv"), signalCSV)
	write(t, filepath.Join(dir, "TSeries-9_Cycle00001_VoltageRecording_001.xml"), "<VRecSessionEntry/>")
	write(t, filepath.Join(dir, "TSeries-9_Cycle00001_VoltageOutput_002.xml"), outputXML)
	write(t, filepath.Join(dir, "TSeries-8_Cycle00001_VoltageRecording_001.csv"), signalCSV)
	write(t, filepath.Join(dir, "notes.txt"), "n/a")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	sessions, err := NewDetector(afs.New()).Discover(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	first := sessions[0]
	assert.True(t, strings.HasSuffix(first.Table, sessionPrefix+"_Cycle00001_VoltageRecording_001.csv"), first.Table)
	assert.True(t, strings.HasSuffix(first.VoltageOutput, cyclePrefix+"_VoltageOutput_001.xml"), first.VoltageOutput)
	assert.True(t, strings.HasSuffix(first.VoltageRecording, cyclePrefix+"_VoltageRecording_001.xml"), first.VoltageRecording)
	assert.True(t, strings.HasSuffix(first.Base, sessionPrefix+".xml"), first.Base)

	second := sessions[1]
	assert.True(t, strings.HasSuffix(second.VoltageOutput, "TSeries-9_Cycle00001_VoltageOutput_002.xml"), second.VoltageOutput)
	assert.Empty(t, second.Base)

	descriptor, err := New(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, cyclePrefix+"_VoltageRecording_001", descriptor.PatchID)
}

func TestDetector_DiscoverExtensionCase(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "TSeries-7_Cycle00001_VoltageRecording_001.CSV"), signalCSV)
	write(t, filepath.Join(dir, "TSeries-7_Cycle00001_VoltageRecording_001.XML"), "<VRecSessionEntry/>")
	write(t, filepath.Join(dir, "TSeries-7_Cycle00001_VoltageOutput_003.Xml"), outputXML)
	write(t, filepath.Join(dir, "TSeries-7.xml"), "<PVScan/>")
	write(t, filepath.Join(dir, "TSeries-7_Cycle00001_VoltageRecording_001.tif"), "n/a")

	sessions, err := NewDetector(afs.New()).Discover(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.True(t, strings.HasSuffix(sessions[0].Table, "TSeries-7_Cycle00001_VoltageRecording_001.CSV"), sessions[0].Table)
	assert.True(t, strings.HasSuffix(sessions[0].VoltageRecording, "TSeries-7_Cycle00001_VoltageRecording_001.XML"), sessions[0].VoltageRecording)
	assert.True(t, strings.HasSuffix(sessions[0].VoltageOutput, "TSeries-7_Cycle00001_VoltageOutput_003.Xml"), sessions[0].VoltageOutput)
	assert.True(t, strings.HasSuffix(sessions[0].Base, "TSeries-7.xml"), sessions[0].Base)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		description string
		location    string
		expect      Kind
		wantErr     bool
	}{
		{description: "signal table", location: "/data/x_VoltageRecording_001.csv", expect: KindSignalTable},
		{description: "voltage output", location: "/data/x_VoltageOutput_001.xml", expect: KindVoltageOutput},
		{description: "voltage recording", location: "file:///data/x_VoltageRecording_001.xml", expect: KindVoltageRecording},
		{description: "session document", location: "/data/TSeries-001.xml", expect: KindSession},
		{description: "unsupported", location: "/data/image.tif", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := KindOf(tc.location)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, actual)
		})
	}
}
