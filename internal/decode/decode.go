// Package decode turns upstream payloads (House XML feeds, ourcommons HTML
// pages, LEGISinfo JSON, proactive-disclosure CSV) into flat records for the
// ingestion pipelines. Decoders are total over field content: missing or
// malformed fields yield zero values and row-level problems surface as
// skipped rows, so only a structurally unusable document fails.
package decode

import "errors"

// ErrDecodeFailed marks a payload whose document root could not be decoded.
var ErrDecodeFailed = errors.New("decode failed")
