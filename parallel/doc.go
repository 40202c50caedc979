// Package parallel fans rendering work out across goroutines. The
// rendering core itself is strictly synchronous; these helpers are how
// a caller renders many pages at once, typically replaying one recorded
// display list (or one list per page) into independent pixmaps.
//
// The batch functions Map, MapErr and Each cover the common cases; they
// run on a shared [WorkerPool] started on first use, which keeps one
// queue per worker and lets idle workers steal from busy ones. A caller
// that wants its own lifetime or width holds a pool directly.
package parallel
