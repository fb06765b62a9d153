// Package projectfs provides the filesystem collaborators the analyzer
// consumes: a bounded-depth directory walker with a denylist for heavy,
// irrelevant subtrees, and a file reader whose errors distinguish absence
// from other I/O failures.
package projectfs
