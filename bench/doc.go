// Package bench drives complexity sweeps over the headless sort variants.
//
// A sweep walks a geometric list of input sizes; for every size and
// algorithm it runs a number of trials on freshly generated arrays
// (seed + trial·101 + n·17), timing each call and summarising comparisons,
// writes and wall time by median, mean, standard deviation and a 95%
// Student-t interval. Cancellation is checked between runs only, never
// inside an algorithm.
//
// Fit estimates the empirical order of growth as the least-squares slope
// of log(metric) against log(n); Curves produces the n, n log n and n²
// reference overlays anchored at the first measured point.
//
// Reports render as CSV, JSON, YAML, an aligned text table or an XLSX
// workbook.
package bench
