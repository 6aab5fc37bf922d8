// Package processor contains the command-line orchestration for
// goodtranslator. It builds the translator from flags and configuration,
// translates single texts and batches, writes results to a file or a
// SQLite store, and checks backend availability.
package processor
