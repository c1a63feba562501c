// Package docsum provides extractive document summarization. It ingests
// plain text, DOCX, PDF and HTML documents (individually or inside ZIP
// archives), scores sentences with a graph-based centrality algorithm over
// TF-IDF cosine similarity, and produces order-preserving summaries and
// downloadable reports.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, textrank/, fpdf/).
package docsum
