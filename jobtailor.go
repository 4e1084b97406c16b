// Package jobtailor provides job-posting detection, job-description
// extraction, and résumé tailoring. It classifies web pages as job
// postings using layered heuristics, extracts the job-description text
// through an escalating strategy ladder, and rewrites a LaTeX résumé
// template against the extracted description with an LLM.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, anthropic/).
package jobtailor
