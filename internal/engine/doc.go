// Package engine implements the burnout risk-scoring, trend-analysis and
// recommendation core. Every entry point is a pure function over
// caller-supplied data: the engine performs no I/O, keeps no state between
// calls and is safe to invoke concurrently for different users. Callers own
// persistence; the engine only returns derived values (risk scores, trend
// fits, cluster assignments, aggregate statistics, recommendation rankings)
// for the caller to store or display.
package engine
