// Package analysis holds the pure derivations every dashboard view is built
// from: the vessel list, per-vessel subsets, free-text search, the route,
// time-series chart data and decoded status tables. The interactive pages,
// the CSV exports and the PDF report all call the same functions.
package analysis
