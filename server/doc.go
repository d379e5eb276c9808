// Package server exposes the trace engines over HTTP.
//
// Routes
//
//	GET /healthz
//	GET /v1/sort/algorithms
//	GET /v1/path/algorithms
//	GET /v1/sort/{algo}?n=&kind=&seed=
//	GET /v1/path/{algo}?mode=&rows=&cols=&seed=&density=&braid=&weights=&diagonal=&heuristic=&randomTies=
//	GET /v1/sweep?algos=&kind=&minN=&maxN=&points=&trials=&seed=&format=&metric=
//
// Every trace response carries the generated input next to the steps, so a
// client can replay the trace without re-implementing the generators.
//
// format is json (default), csv, yaml, table or xlsx. Sweeps beyond
// limits.maxConcurrentSweeps wait for a slot until their request ends.
//
// Middleware order: request id, access log, compression (zstd preferred
// over gzip), panic recovery, CORS.
//
// Errors
//
//	Invalid query parameters and values above the configured limits answer
//	400 with {"error": "...", "requestId": "..."}. Unknown algorithms answer
//	404. A sweep cut short by its deadline answers 504.
package server
