// Package codewiki extracts structured records from the rendered pages of
// the Code Wiki documentation site: the featured repository list on the
// homepage and the per-repository documentation pages.
//
// This package contains domain types, interfaces and the extraction logic
// following Ben Johnson's Standard Package Layout. Implementations of the
// interfaces live in subdirectories named after their primary dependency
// (e.g., rod/, goquery/, trafilatura/).
package codewiki
