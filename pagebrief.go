// Package pagebrief turns a single web page into an LLM-generated summary.
// It extracts readable text from rendered HTML, splits it into bounded
// overlapping chunks, summarizes each chunk independently, and reduces the
// partial summaries into one final summary.
//
// This package contains domain types, interfaces, and pure algorithms
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// gemini/, rod/), and the orchestration lives in pipeline/.
package pagebrief
