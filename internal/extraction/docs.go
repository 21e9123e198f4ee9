// Package extraction converts inbound purchase documents into candidate
// order fragments.
//
// A document's layout is detected first and a matching variant extracts
// the fields it knows about. Individual fields or rows that fail to parse
// are skipped with a log entry, never escalated: the extractor returns
// whatever fragment it could assemble and admission is decided afterwards
// by Fragment.Validate.
package extraction
