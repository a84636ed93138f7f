// Package optics implements OPTICS (Ordering Points To Identify the
// Clustering Structure), a density-based clustering algorithm that produces
// a linear ordering of points annotated with reachability distances instead
// of a single flat partition.
//
// Basic usage:
//
//	cfg := optics.DefaultConfig()
//	cfg.Eps = 2.0
//	cfg.MinPts = 3
//	ordering, err := optics.Run(points, cfg)
//	// ordering.Reachability[i] is the reachability distance recorded when
//	// ordering.Points[i] was emitted (optics.Undefined if none).
//
// The ordering by itself only reveals density structure visually (as a
// reachability plot); to extract flat clusters, find ascending border
// indices with [Config.FindBorders] and feed them to [ExtractClusters]:
//
//	borders, err := cfg.FindBorders(ordering)
//	buckets, err := optics.ExtractClusters(ordering, borders, cfg.OutlierThreshold)
//	// buckets[0] is the outlier bucket; buckets[1:] are clusters in order.
//
// # Scope
//
// This package is the clustering core only: it operates on in-memory point
// sets and makes no attempt at spatial-index acceleration, persistence, or
// incremental updates. Rendering a reachability plot, turning an image into
// points, and prompting a user for parameters are all left to callers.
package optics
