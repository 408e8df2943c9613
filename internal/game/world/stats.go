package world

import (
	"sync/atomic"

	"go.uber.org/zap/zapcore"
)

type counters struct {
	created   atomic.Uint64
	generated atomic.Uint64
	meshed    atomic.Uint64
	deferred  atomic.Uint64
	stale     atomic.Uint64
	uploaded  atomic.Uint64
	evicted   atomic.Uint64
	reclaimed atomic.Uint64
	edits     atomic.Uint64
}

// Stats is a point-in-time view of the pipeline.
type Stats struct {
	Created   uint64 `yaml:"created"` // columns inserted into the index
	Generated uint64 `yaml:"generated"`
	Meshed    uint64 `yaml:"meshed"`   // meshes that reached the upload queue
	Deferred  uint64 `yaml:"deferred"` // mesh jobs that waited on an ungenerated neighbour
	Stale     uint64 `yaml:"stale"`    // meshes discarded because the column changed mid-build
	Uploaded  uint64 `yaml:"uploaded"`
	Evicted   uint64 `yaml:"evicted"`
	Reclaimed uint64 `yaml:"reclaimed"` // out-of-range columns meshed so they can be evicted
	Edits     uint64 `yaml:"edits"`

	Columns       int `yaml:"columns"`
	UploadQueue   int `yaml:"upload_queue"`
	DeletionQueue int `yaml:"deletion_queue"`

	PendingGenerate     uint64 `yaml:"pending_generate"`
	PendingMesh         uint64 `yaml:"pending_mesh"`
	PendingHousekeeping uint64 `yaml:"pending_housekeeping"`
}

// Stats returns current counters and gauges.
func (m *Manager) Stats() Stats {
	return Stats{
		Created:   m.counters.created.Load(),
		Generated: m.counters.generated.Load(),
		Meshed:    m.counters.meshed.Load(),
		Deferred:  m.counters.deferred.Load(),
		Stale:     m.counters.stale.Load(),
		Uploaded:  m.counters.uploaded.Load(),
		Evicted:   m.counters.evicted.Load(),
		Reclaimed: m.counters.reclaimed.Load(),
		Edits:     m.counters.edits.Load(),

		Columns:       m.index.Len(),
		UploadQueue:   m.uploads.Len(),
		DeletionQueue: m.deletions.Len(),

		PendingGenerate:     m.generate.Pending(),
		PendingMesh:         m.mesh.Pending(),
		PendingHousekeeping: m.housekeeping.Pending(),
	}
}

// MarshalLogObject lets Stats be logged with zap.Object.
func (s Stats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint64("created", s.Created)
	enc.AddUint64("generated", s.Generated)
	enc.AddUint64("meshed", s.Meshed)
	enc.AddUint64("deferred", s.Deferred)
	enc.AddUint64("stale", s.Stale)
	enc.AddUint64("uploaded", s.Uploaded)
	enc.AddUint64("evicted", s.Evicted)
	enc.AddUint64("reclaimed", s.Reclaimed)
	enc.AddUint64("edits", s.Edits)
	enc.AddInt("columns", s.Columns)
	enc.AddInt("upload_queue", s.UploadQueue)
	enc.AddInt("deletion_queue", s.DeletionQueue)
	enc.AddUint64("pending_generate", s.PendingGenerate)
	enc.AddUint64("pending_mesh", s.PendingMesh)
	enc.AddUint64("pending_housekeeping", s.PendingHousekeeping)
	return nil
}
