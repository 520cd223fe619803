// Package types contains the measurement records shared by the reader, the
// reporter and the analyzer.
package types

import "time"

// MeasurementRecord is one vertex or face row of the benchmark table.
//
// For a vertex, PrimaryTime/PrimaryCount describe the faces touching it.
// For a face, they describe the vertices it is made of. The adjacent fields
// always describe the neighbours of the element.
type MeasurementRecord struct {
	Kind          Kind
	Index         int
	PrimaryTime   float64 // seconds
	PrimaryCount  int
	AdjacentTime  float64 // seconds
	AdjacentCount int
}

// TotalTime is the externally measured execution time. It may be absent when
// the input carries no total row, so callers must go through Get.
type TotalTime struct {
	seconds float64
	present bool
}

// SomeTotal returns a TotalTime holding seconds.
func SomeTotal(seconds float64) TotalTime {
	return TotalTime{seconds: seconds, present: true}
}

// Get returns the stored seconds and whether a value was recorded.
func (t TotalTime) Get() (float64, bool) {
	return t.seconds, t.present
}

// RecordSet is everything read from one benchmark file.
type RecordSet struct {
	Vertices []MeasurementRecord // insertion order
	Faces    []MeasurementRecord // insertion order
	Total    TotalTime
	Stats    ReadStats
}

// ReadStats contains statistics about the read pass.
type ReadStats struct {
	Rows     int           // Data rows seen, excluding the header
	Ignored  int           // Rows whose kind is not recognised
	Duration time.Duration // Time taken for the read
}
