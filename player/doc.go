// Package player steps through a materialized trace one event at a time.
//
// A player owns a cursor into an immutable step list plus the state that
// results from applying the first Cursor() steps: the working array for a
// sort trace, the cell overlay for a path trace. Seeking backwards resets
// and replays from the start, so any position is reachable in O(cursor)
// and playback can be paused, resumed or scrubbed arbitrarily.
//
// Players are not safe for concurrent use; traces may be shared freely.
package player
