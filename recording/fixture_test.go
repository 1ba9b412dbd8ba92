package recording

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	sessionPrefix = "TSeries-05012019-1423-001"
	cyclePrefix   = sessionPrefix + "_Cycle00001"
)

const signalCSV = `Time(ms), Input 0, Input 1, Input 2
0.0, -65.1, 0.5, 12
0.1, -65.2, 0.4, 13
0.2, -65.0, 0.6, 14
`

const outputXML = `<?xml version="1.0" encoding="utf-8"?>
<Experiment>
  <PVOutputChannel>
    <Name>Output 0</Name>
    <Enabled>true</Enabled>
    <WaveformComponent_PulseTrain_1>
      <Name>Pulse</Name>
      <PulseCount>5</PulseCount>
      <PulseAmplitude>-10</PulseAmplitude>
    </WaveformComponent_PulseTrain_1>
  </PVOutputChannel>
  <PVOutputChannel>
    <Name>Output 1</Name>
    <Enabled>false</Enabled>
  </PVOutputChannel>
</Experiment>`

const signalXML = `<VRecSignal>
      <Name>{{name}}</Name>
      <Unit>
        <UnitName>{{unit}}</UnitName>
        <Multiplier>100</Multiplier>
        <Divisor>{{divisor}}</Divisor>
      </Unit>
      <Type>Voltage</Type>
      <Gain>1</Gain>
      <Channel>{{channel}}</Channel>
      <Enabled>true</Enabled>
    </VRecSignal>`

const recordingXML = `<?xml version="1.0" encoding="utf-8"?>
<VRecSessionEntry>
  <DataFile>{{dataFile}}</DataFile>
  <DateTime>2019-05-01T14:23:11.1234567-07:00</DateTime>
  <Experiment>
    <AcquisitionTime>60000</AcquisitionTime>
    <Rate>10000</Rate>
  </Experiment>
  <SignalList>
    {{signals}}
  </SignalList>
</VRecSessionEntry>`

const baseXML = `<?xml version="1.0" encoding="utf-8"?>
<PVScan version="5.7.64.300" date="5/1/2019 2:23:11 PM" notes="">
  <Sequence type="VoltageRecording" cycle="1">
    <VoltageRecording configurationFile="{{prefix}}_VoltageRecording_001.xml" dataFile="{{prefix}}_VoltageRecording_001.csv" />
    <VoltageOutput name="Protocol" filename="{{prefix}}_VoltageOutput_001.xml" />
  </Sequence>
</PVScan>`

type sessionFixture struct {
	dataFile string
	divisor  string
	signals  int
	noBase   bool
}

func signals(count int, divisor string) string {
	units := []string{"mV", "pA", "mV"}
	var items []string
	for i := 0; i < count; i++ {
		item := strings.NewReplacer(
			"{{name}}", "Input "+string(rune('0'+i)),
			"{{unit}}", units[i%len(units)],
			"{{divisor}}", divisor,
			"{{channel}}", string(rune('0'+i)),
		).Replace(signalXML)
		items = append(items, item)
	}
	return strings.Join(items, "\n    ")
}

// writeSession writes a complete session into dir and returns its paths
func writeSession(t *testing.T, dir string, fixture sessionFixture) Paths {
	t.Helper()
	if fixture.dataFile == "" {
		fixture.dataFile = cyclePrefix + "_VoltageRecording_001.csv"
	}
	if fixture.divisor == "" {
		fixture.divisor = "1"
	}
	if fixture.signals == 0 {
		fixture.signals = 3
	}
	paths := Paths{
		Table:            filepath.Join(dir, cyclePrefix+"_VoltageRecording_001.csv"),
		VoltageOutput:    filepath.Join(dir, cyclePrefix+"_VoltageOutput_001.xml"),
		VoltageRecording: filepath.Join(dir, cyclePrefix+"_VoltageRecording_001.xml"),
	}
	recording := strings.NewReplacer(
		"{{dataFile}}", fixture.dataFile,
		"{{signals}}", signals(fixture.signals, fixture.divisor),
	).Replace(recordingXML)
	write(t, paths.Table, signalCSV)
	write(t, paths.VoltageOutput, outputXML)
	write(t, paths.VoltageRecording, recording)
	if !fixture.noBase {
		paths.Base = filepath.Join(dir, sessionPrefix+".xml")
		write(t, paths.Base, strings.ReplaceAll(baseXML, "{{prefix}}", cyclePrefix))
	}
	return paths
}

func write(t *testing.T, location, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
}
