// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import "strings"

// Section identifies the logical region of the transcript the parser is in.
// Transitions are one-directional: PreRecord → TransferSection →
// GraduateRecord, with GraduateRecord terminal. There is no back-edge, so a
// marker seen once can never re-admit undergraduate lines.
type Section int

const (
	// SectionPreRecord covers everything before a transfer or graduate
	// marker, including the undergraduate record. Lines here are discarded.
	SectionPreRecord Section = iota

	// SectionTransfer covers the transfer-credit block. Course lines here
	// are accepted as transfer credits.
	SectionTransfer

	// SectionGraduate covers the graduate record through end of input.
	SectionGraduate
)

// Marker tokens as printed on the transcript.
const (
	graduateMarker = "Beginning of Graduate Record"
	transferMarker = "Transfer Credit"
)

// String returns the section name for diagnostics.
func (s Section) String() string {
	switch s {
	case SectionPreRecord:
		return "pre-record"
	case SectionTransfer:
		return "transfer"
	case SectionGraduate:
		return "graduate"
	}
	return "unknown"
}

// Next returns the section after observing line. The graduate marker wins
// from any non-terminal state; the transfer marker only advances PreRecord.
func (s Section) Next(line string) Section {
	switch s {
	case SectionPreRecord:
		if strings.Contains(line, graduateMarker) {
			return SectionGraduate
		}
		if strings.Contains(line, transferMarker) {
			return SectionTransfer
		}
	case SectionTransfer:
		if strings.Contains(line, graduateMarker) {
			return SectionGraduate
		}
	}
	return s
}
