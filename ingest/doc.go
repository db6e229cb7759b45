// Package ingest is the record source of the pipeline: it turns the node and
// edge CSV tables into core.NodeRow and core.Edge values.
//
// Tables
//
//	node table: header row, then rows with at least three columns; by default
//	            column 1 is the raw display name and column 2 the node id.
//	edge table: header row, then rows with at least two columns; by default
//	            column 0 is the from id and column 1 the to id.
//
// Column positions are configurable through Layout. Fields are trimmed before
// integer parsing; names are passed on untrimmed (core.BuildRegistry trims).
//
// Errors
//
// Ingestion is all-or-nothing. The first row whose id field is missing or is
// not a non-negative integer aborts the load with a *RowError wrapping
// ErrMalformedRow; no partial dataset is returned. Unreadable files and CSV
// syntax errors abort the same way, wrapped with the table name.
//
// LoadFiles reads both tables concurrently and cancels the sibling read as
// soon as one fails.
package ingest
