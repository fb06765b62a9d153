// Package storage provides SQLite-based persistence for analysis runs.
//
// Each project analysis records one row of summary counts so the server can
// answer history queries without re-analyzing. Full analysis results stay
// in memory; only the run summary is durable.
//
// # Database Schema
//
// Tables:
//   - analysis_runs: one row per completed analysis (root path, platform /
//     lane / signal / recommendation counts, duration)
//   - schema_version: applied migration versions, semver ordered
//
// # Basic Usage
//
//	store, err := storage.NewSQLiteStorage("~/.fastlane-context/runs.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	run := storage.NewRun(analysis, time.Since(start))
//	if err := store.RecordRun(ctx, run); err != nil {
//	    log.Fatal(err)
//	}
//
//	recent, err := store.ListRuns(ctx, "", 20)
//
// # Build Tags
//
// The storage package supports two build configurations:
//
// CGO Build (cgosqlite tag):
//
//   - Uses github.com/mattn/go-sqlite3 driver
//
//   - Requires C compiler
//
//     CGO_ENABLED=1 go build -tags cgosqlite
//
// Pure Go Build (default):
//
//   - Uses modernc.org/sqlite driver
//
//   - No C compiler needed
//
//     CGO_ENABLED=0 go build
package storage
