// Command ephys inspects patch-clamp recording sessions: a signal table together with
// its VoltageOutput and VoltageRecording metadata documents.
package main
