// Package core provides the business logic of the budget tracker.
//
// The package holds the domain types and every operation the HTTP layer
// exposes. It knows nothing about HTTP or SQL: persistence sits behind the
// [Store] interfaces and passwords, tokens, events and the AI model behind
// small interfaces passed in [Deps].
//
// # CSV Import
//
// Bank statements are imported in two steps:
//
//  1. [Service.PreviewCSV] decodes the upload, detects the delimiter and
//     returns the columns, a few sample rows and an approximate row count.
//  2. [Service.ImportCSV] takes the caller's [ColumnMapping], converts every
//     row and stores the result in a single transaction.
//
// Decoding tries UTF-8, CP1250, ISO-8859-2 and Windows-1252 in that order
// ([Decode]). Delimiters are detected semicolon-first ([DetectTable]).
// Bad rows never fail an import; they are counted as skipped and the first
// [MaxReportedRowErrors] are reported back.
//
// # Access Scope
//
// Reads are filtered by an [AccessScope]: the caller's own rows plus, when a
// household is selected, the rows shared with that household. Selecting a
// household requires membership.
//
// # Error Handling
//
// Errors are classified with errors.Is against the kinds in errors.go and
// turned into caller-facing messages by [MapError].
package core
