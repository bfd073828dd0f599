// SPDX-License-Identifier: MIT

// Package schedule partitions the rows of a parallel loop across a fixed pool
// of worker goroutines.
//
// Policies:
//
//	static   contiguous equal blocks assigned up front (or round-robin blocks
//	         of Chunk rows when Chunk > 0); no rebalancing.
//	dynamic  workers claim Chunk rows (default 1) from a shared cursor as
//	         they become free.
//	guided   like dynamic, but each claim is ceil(remaining/threads) rows,
//	         never below Chunk, so claims shrink as the loop drains.
//	runtime  resolved at call time from an explicit "kind[,chunk]" setting.
//	auto     implementation-chosen; resolves to guided with chunk 1.
//
// There is no process-wide schedule state: a runtime setting is always passed
// explicitly to Resolve (or to the caller that resolves it).
//
// Run is a structured parallel-for: each worker builds its private state once
// with Body.Init, and for every row it owns calls Body.Iter and then
// Body.Finalize on the same goroutine.
package schedule
