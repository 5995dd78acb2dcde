// SPDX-License-Identifier: MIT

// Package store persists analysis reports in a SQLite database.
//
// The pure-Go modernc.org/sqlite driver is used, so no cgo toolchain is
// needed. Balls are written with ball.Ball.MarshalText and read back
// exactly; run ids are the uuids assigned by analysis.Analyzer.Run.
//
// Schema:
//
//	runs   one row per report
//	sides  one row per analysed side
//	zeros  one row per zero, ordered by idx within (run_id, side)
package store
