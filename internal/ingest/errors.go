package ingest

import "errors"

// ErrRaggedRows is returned when CSV rows disagree on field count.
var ErrRaggedRows = errors.New("ingest: ragged rows (inconsistent coordinate count)")

// ErrEmptyCloud is returned when the CSV source has no data rows.
var ErrEmptyCloud = errors.New("ingest: empty point cloud")
