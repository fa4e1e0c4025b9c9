// Package exporter writes the dashboard views out as CSV report files.
//
// Three reports are produced: the date-ordered time series, the per-month
// summary and the cumulative progress table. The writer creates the reports
// directory on demand and prefixes files with a UTF-8 BOM so spreadsheet
// tools pick up the encoding.
package exporter
