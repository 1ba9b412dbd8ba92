package recording

import (
	"fmt"

	"github.com/minio/highwayhash"
)

var fingerprintKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Fingerprints holds content digests of the session files
type Fingerprints struct {
	Table            string `yaml:"table"`
	VoltageOutput    string `yaml:"voltageOutput"`
	VoltageRecording string `yaml:"voltageRecording"`
}

// Fingerprint returns a hex encoded 64-bit HighwayHash of data
func Fingerprint(data []byte) (string, error) {
	hash, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return "", err
	}
	if _, err = hash.Write(data); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", hash.Sum64()), nil
}

func fingerprints(tableData, outputData, recordingData []byte) (Fingerprints, error) {
	var result Fingerprints
	var err error
	if result.Table, err = Fingerprint(tableData); err != nil {
		return result, err
	}
	if result.VoltageOutput, err = Fingerprint(outputData); err != nil {
		return result, err
	}
	result.VoltageRecording, err = Fingerprint(recordingData)
	return result, err
}
