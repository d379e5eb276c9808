// Package config loads the YAML file shared by `algoviz serve` and
// `algoviz sweep`.
//
// A file has two sections:
//
//	server:
//	  addr: ":8080"
//	  readTimeout: 10s
//	  writeTimeout: 60s
//	  idleTimeout: 120s
//	  corsOrigins: ["*"]
//	  logMode: dev
//	  limits: {maxN: 512, maxRows: 201, maxCols: 201, maxSweepN: 20000, maxTrials: 20, maxPoints: 30,
//	           maxConcurrentSweeps: 2}
//	sweep:
//	  algorithms: [bubble, insertion, merge, quick]
//	  kind: random
//	  minN: 100
//	  maxN: 2000
//	  points: 7
//	  trials: 3
//	  seed: 7
//	  metric: comparisons
//
// Parse starts from Default and overlays the document, so every key is
// optional. Unknown keys are rejected.
//
// ApplyEnv then overlays a few ALGOVIZ_* variables, read from the process
// environment or from dotenv files via LookupEnv.
package config
