// Package scan discovers level files under a root directory and tallies them
// with a pool of workers.
//
// Each worker owns a private stats.Tally; the partial tallies are merged once
// every worker has finished, so the final counts do not depend on scheduling.
//
// Failures fall into two classes. Parse and group-resolution errors are local
// to one file: the file is logged, recorded as skipped and contributes nothing
// to the counts. I/O errors (walk failures, unreadable or non-UTF-8 files) are
// returned as *IOError and abort the whole run.
package scan
