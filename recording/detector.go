package recording

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/viant/afs"
)

var (
	recordingTableExpr = regexp.MustCompile(`^(.+)_VoltageRecording_(\d+)$`)
	cycleExpr          = regexp.MustCompile(`_Cycle\d+$`)
)

// Detector identifies recording sessions among files of an acquisition folder
type Detector struct {
	fs afs.Service
}

// NewDetector creates a detector reading through fs
func NewDetector(fs afs.Service) *Detector {
	if fs == nil {
		fs = afs.New()
	}
	return &Detector{fs: fs}
}

// Discover returns session paths for each VoltageRecording signal table in folder that has
// both metadata documents next to it; the session document is set when present.
// Files are classified with KindOf, so extensions match regardless of case.
func (d *Detector) Discover(ctx context.Context, folder string) ([]Paths, error) {
	objects, err := d.fs.List(ctx, folder)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", folder, err)
	}
	files := map[Kind]map[string]string{}
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		kind, err := KindOf(object.Name())
		if err != nil {
			continue
		}
		if files[kind] == nil {
			files[kind] = map[string]string{}
		}
		files[kind][baseID(object.Name())] = object.URL()
	}

	var result []Paths
	for id, location := range files[KindSignalTable] {
		matches := recordingTableExpr.FindStringSubmatch(id)
		if matches == nil {
			continue
		}
		prefix, index := matches[1], matches[2]
		recordingDoc, ok := files[KindVoltageRecording][id]
		if !ok {
			continue
		}
		outputDoc, ok := files[KindVoltageOutput][prefix+"_VoltageOutput_"+index]
		if !ok {
			if outputDoc = anyOutput(files[KindVoltageOutput], prefix); outputDoc == "" {
				continue
			}
		}
		paths := Paths{Table: location, VoltageOutput: outputDoc, VoltageRecording: recordingDoc}
		if base, ok := files[KindSession][cycleExpr.ReplaceAllString(prefix, "")]; ok {
			paths.Base = base
		}
		result = append(result, paths)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Table < result[j].Table
	})
	return result, nil
}

// anyOutput returns the first (by name) VoltageOutput document sharing prefix
func anyOutput(outputs map[string]string, prefix string) string {
	var candidates []string
	for id := range outputs {
		if strings.HasPrefix(id, prefix+"_VoltageOutput_") {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	sort.Strings(candidates)
	return outputs[candidates[0]]
}
