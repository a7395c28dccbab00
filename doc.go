// Package distmat works with labeled pairwise-distance matrices without
// ever touching the coordinate space they came from.
//
// 🚀 What is distmat?
//
//	A compact, in-memory toolkit for the distance tables produced by
//	ecology, microbiome and general multivariate pipelines:
//		• dist:     condensed symmetric storage with label indexing,
//		            subsetting, pair extraction and group tabulation
//		• pairwise: build a distance matrix from raw feature rows under
//		            any caller-supplied metric, sequentially or with a
//		            worker pool
//		• centroid: distances to and between group centroids recovered
//		            from pairwise distances alone — no coordinates are
//		            ever known or reconstructed
//
// ✨ Why choose distmat?
//
//   - Compact – only the n·(n−1)/2 upper triangle is ever stored
//   - Deterministic – one canonical pair order everywhere, parallel
//     builds bit-identical to sequential ones
//   - Honest numerics – symmetry and diagonal checks with an explicit
//     epsilon policy; non-Euclidean inputs fail instead of lying
//
// Everything is organized under three subpackages:
//
//	dist/     — the Dist store and its read-only derivations
//	pairwise/ — metrics and the (optionally parallel) matrix builder
//	centroid/ — Gower-identity centroid distance computations
//
// Reading long-format data, pivoting, plotting and persistence are
// deliberately out of scope: distmat produces and consumes plain Go
// values that downstream analysis code can reshape as it likes.
//
//	go get github.com/katalvlaran/distmat
package distmat
