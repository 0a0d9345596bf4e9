// =============================================================================
// pain.001 / pain.002 Batch Generator - Shared Types
// =============================================================================
//
// This package contains value types shared by the generator, the file
// manager and the CLI commands.
//
// =============================================================================

package types

import (
	"strconv"
	"time"
)

// =============================================================================
// MESSAGE IDENTITY
// =============================================================================

// MessageIDLayout is the timestamp part of a message id (yyyyMMddHHmmss).
const MessageIDLayout = "20060102150405"

// MessageID identifies one pain.001/pain.002 pair. It is embedded in file
// names and in every MsgId/PmtInfId/EndToEndId of both documents.
type MessageID string

// NewMessageID joins the timestamp of t with the 1-based sequence index.
// Two calls within the same second are only distinct through seq.
func NewMessageID(t time.Time, seq int) MessageID {
	return MessageID(t.Format(MessageIDLayout) + strconv.Itoa(seq))
}

func (id MessageID) String() string {
	return string(id)
}

// =============================================================================
// ARTIFACTS
// =============================================================================

// ArtifactKind names the role of a written file.
type ArtifactKind string

const (
	Pain001Meta        ArtifactKind = "pain001.meta"
	Pain001MetaTrigger ArtifactKind = "pain001.meta.trigger"
	Pain001XML         ArtifactKind = "pain001.xml"
	Pain001XMLTrigger  ArtifactKind = "pain001.xml.trigger"
	Pain002XML         ArtifactKind = "pain002.xml"
	Pain002XMLTrigger  ArtifactKind = "pain002.xml.trigger"
)

// IsTrigger reports whether the artifact is an empty marker file.
func (k ArtifactKind) IsTrigger() bool {
	switch k {
	case Pain001MetaTrigger, Pain001XMLTrigger, Pain002XMLTrigger:
		return true
	}
	return false
}

// Artifact is a file written during a run.
type Artifact struct {
	Kind ArtifactKind
	Path string
	Size int
}

// =============================================================================
// RUN RESULTS
// =============================================================================

// RunResult describes one iteration of the batch.
type RunResult struct {
	MessageID MessageID

	// Artifacts lists the files in write order: four pain.001 files then two
	// pain.002 files.
	Artifacts []Artifact

	// Transactions is the NbOfTxs declared in the pain.001 document.
	Transactions int

	// ControlSum is the CtrlSum text declared in the pain.001 document.
	ControlSum string
}
