package recording

import (
	"fmt"
	"path"
	"strconv"
)

// Mismatch reports session files disagreeing on a fact; mismatches never fail a load
type Mismatch struct {
	Field    string `yaml:"field"`
	Expected string `yaml:"expected"`
	Actual   string `yaml:"actual"`
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: expected %q, got %q", m.Field, m.Expected, m.Actual)
}

func (d *Descriptor) check(data *contents) []Mismatch {
	var result []Mismatch
	compare := func(field, expected, actual string) {
		if expected != actual {
			result = append(result, Mismatch{Field: field, Expected: expected, Actual: actual})
		}
	}
	tableName := path.Base(d.paths.Table)
	if dataFile := data.recording.Session.DataFileName; dataFile != "" {
		compare("DataFile", path.Base(dataFile), tableName)
	}
	if enabled := len(data.recording.EnabledSignals()); enabled > 0 {
		compare("columns", strconv.Itoa(enabled), strconv.Itoa(len(data.table.DataColumns())))
	}
	if base := data.base; base != nil {
		compare("dataFile", path.Base(base.DataFile), tableName)
		compare("configurationFile", path.Base(base.ConfigurationFile), path.Base(d.paths.VoltageRecording))
		if base.VoltageOutputFile != "" {
			compare("filename", path.Base(base.VoltageOutputFile), path.Base(d.paths.VoltageOutput))
		}
	}
	return result
}
