// Package writers turns assigned sample sheets into serialized files.
//
// Design:
//   • Writers own all presentation knowledge (CSV, JSON, JSONL, XLSX).
//   • core/assign stays domain-only; it never imports writers.
//   • JSON and JSONL go through pkg/api (v1) for a stable wire format.
package writers
