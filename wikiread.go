// Package wikiread provides a local, CLI-based Wikipedia article reader.
// It fetches article summaries and rendered parse HTML from a MediaWiki
// API, extracts a readable sectioned document from the raw markup, and
// supports saving articles to a local library, markdown export, title
// search, and natural language questions about saved articles.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package wikiread
