package optics

import (
	"fmt"
	"math"
	"sort"
)

// Config controls OPTICS ordering behavior. Start with [DefaultConfig] and
// override the fields you need.
type Config struct {
	// Eps is the neighborhood radius and must be >= 0. A negative value is
	// rejected with ErrInvalidParameter: "no radius limit" is a
	// caller-visible convention, not something Run substitutes internally —
	// callers wanting it should set Eps via [NormalizeEps] (or
	// [Config.Normalize]) before calling Run, the way cmd/opticsctl does.
	// Default: -1, a placeholder meaning "substitute before use", not a
	// value Run itself will accept.
	Eps float64

	// MinPts is the density threshold: a point needs at least MinPts other
	// points in its ε-neighborhood to be a core object. Must be >= 1.
	// Default: 5.
	MinPts int

	// OnPointProcessed, if non-nil, is invoked synchronously once per point
	// emission, with the index of the point just emitted. It must not
	// mutate the dataset; doing so is undefined behavior.
	OnPointProcessed func(point int)

	// PeakMode selects how FindBorders extracts border indices from a
	// completed Ordering's reachability signal. Default: PeakModeTopK.
	PeakMode PeakMode

	// K is the top-k parameter used when PeakMode is PeakModeTopK. Must be
	// >= 1. Default: 2 (one border, two clusters).
	K int

	// Persistence is the threshold used when PeakMode is
	// PeakModeThreshold. Must be >= 0.
	Persistence float64

	// OutlierThreshold is passed to ExtractClusters. <= 0 means "no
	// outliers". Default: -1.
	OutlierThreshold float64
}

// PeakMode selects FindBorders' extraction strategy.
type PeakMode int

const (
	// PeakModeTopK extracts the K-1 most persistent maxima.
	PeakModeTopK PeakMode = iota
	// PeakModeThreshold extracts every maximum at or above Persistence.
	PeakModeThreshold
)

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Eps:              -1,
		MinPts:           5,
		PeakMode:         PeakModeTopK,
		K:                2,
		OutlierThreshold: -1,
	}
}

// FindBorders runs PeakFinder over ordering's reachability signal according
// to cfg.PeakMode, returning a border index list ready for ExtractClusters
// (ascending, per spec.md §4.7's contract between PeakFinder and
// ClusterExtractor).
func (cfg Config) FindBorders(ordering *Ordering) ([]int, error) {
	var (
		borders []int
		err     error
	)
	switch cfg.PeakMode {
	case PeakModeThreshold:
		borders, err = FindPeaksThreshold(ordering.Reachability, cfg.Persistence)
	default:
		borders, err = FindPeaksTopK(ordering.Reachability, cfg.K)
	}
	if err != nil {
		return nil, err
	}
	sort.Ints(borders)
	return borders, nil
}

// NormalizeEps implements the caller-visible convention documented in
// spec.md §6: a negative epsilon means "no radius limit" and is replaced by
// the maximum finite float64. It is the caller's responsibility to apply
// this — mirroring the original implementation, where the substitution
// happens in the test harness that calls into the core, not inside the
// core's own optics() — so Run/RunStore never apply it implicitly; see
// [Config.Normalize] for a convenient way to apply it to a whole Config.
func NormalizeEps(eps float64) float64 {
	if eps < 0 {
		return math.MaxFloat64
	}
	return eps
}

// Normalize returns a copy of cfg with Eps passed through [NormalizeEps].
// Call this before Run/RunStore whenever Eps might be negative; cmd/opticsctl
// does the equivalent at its flag-parsing boundary.
func (cfg Config) Normalize() Config {
	cfg.Eps = NormalizeEps(cfg.Eps)
	return cfg
}

// epsSq squares cfg.Eps once for use by every neighborhood scan in this run,
// per spec.md §4.1. cfg.Eps must already be non-negative by the time this is
// called; validateConfig enforces that.
func (cfg Config) epsSq() float64 {
	return cfg.Eps * cfg.Eps
}

// validateConfig rejects the parameter combinations spec.md §7 assigns to
// InvalidParameter. A raw negative Eps is one of them: spec.md §4.6/§6's
// "no radius limit" substitution is a convention applied by a layer above
// the core (confirmed by the original implementation's optics(), which
// asserts eps >= 0 and leaves the -1 convention to its test harness) — Run
// and RunStore are that core, so they reject it rather than silently
// substituting.
func validateConfig(cfg Config) error {
	if cfg.Eps < 0 || math.IsNaN(cfg.Eps) {
		return fmt.Errorf("%w: Eps must be >= 0, got %v (use NormalizeEps or Config.Normalize to apply the \"no radius limit\" convention before calling Run)", ErrInvalidParameter, cfg.Eps)
	}
	if cfg.MinPts < 1 {
		return fmt.Errorf("%w: MinPts must be >= 1, got %d", ErrInvalidParameter, cfg.MinPts)
	}
	return nil
}

// Ordering is the result of one OPTICS run: a permutation of [0, n) in
// emission order, with the reachability distance each point held at the
// moment it was emitted.
type Ordering struct {
	// Points[i] is the handle (PointStore index) emitted at position i.
	Points []int
	// Reachability[i] is the reachability distance recorded for Points[i],
	// possibly Undefined.
	Reachability []float64
}

// Len is the number of points in the ordering, equal to the dataset size.
func (o *Ordering) Len() int { return len(o.Points) }

// Run builds a PointStore from dataset and performs the OPTICS
// density-reachability ordering over it, mirroring the teacher's top-level
// Cluster(data [][]float64, cfg Config) entry point. Callers who already
// hold a *PointStore (for example one built with [NewLabeledPointStore])
// should call [RunStore] directly instead.
//
// cfg.Eps must be >= 0 and cfg.MinPts must be >= 1, or Run returns an error
// wrapping ErrInvalidParameter before any point is touched. A caller wanting
// "no radius limit" must apply that convention itself before calling Run —
// see [NormalizeEps] and [Config.Normalize].
func Run(dataset [][]float64, cfg Config) (*Ordering, error) {
	ps, err := NewPointStore(dataset)
	if err != nil {
		return nil, err
	}
	return RunStore(ps, cfg)
}

// RunStore performs the OPTICS density-reachability ordering over an
// already-built PointStore, using NeighborScan's linear ε-scan for every
// neighborhood lookup. See [Run] for the common case of running directly
// over a raw dataset, and [RunWithCache] for repeated runs over one fixed
// dataset that want to share a precomputed distance matrix instead.
func RunStore(ps *PointStore, cfg Config) (*Ordering, error) {
	return runOrdering(ps, cfg, func(p int, epsSq float64) []int {
		return Neighbors(ps, p, epsSq)
	})
}

// neighborFunc looks up the ε-neighborhood of point p for one OPTICS run.
// RunStore backs it with NeighborScan's linear scan; RunWithCache backs it
// with a precomputed DistanceCache instead. Either way expandClusterOrder
// and updateSeeds are oblivious to which lookup strategy is in play.
type neighborFunc func(p int, epsSq float64) []int

func runOrdering(ps *PointStore, cfg Config, neighbors neighborFunc) (*Ordering, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	n := ps.Len()
	ps.reset()

	ordering := &Ordering{
		Points:       make([]int, 0, n),
		Reachability: make([]float64, 0, n),
	}

	epsSq := cfg.epsSq()

	for p := 0; p < n; p++ {
		if ps.Processed(p) {
			continue
		}
		expandClusterOrder(ps, p, epsSq, cfg.MinPts, ordering, cfg.OnPointProcessed, neighbors)
	}

	return ordering, nil
}

// expandClusterOrder implements expand_cluster_order from spec.md §4.6: it
// emits p, and if p is a core object, drains a seed queue of its
// density-reachable neighbors, emitting each in turn.
func expandClusterOrder(ps *PointStore, p int, epsSq float64, minPts int, ordering *Ordering, onProcessed func(int), neighbors neighborFunc) {
	pNeighbors := neighbors(p, epsSq)
	ps.SetReachability(p, Undefined)
	coreDist := CoreDistance(ps, p, minPts, pNeighbors)

	ps.MarkProcessed(p)
	emit(ordering, ps, p, onProcessed)

	if coreDist == Undefined {
		return // p is not a core object; nothing to seed
	}

	seeds := NewSeedQueue()
	updateSeeds(ps, pNeighbors, p, coreDist, seeds)

	for seeds.Len() > 0 {
		q := seeds.PopMin()

		qNeighbors := neighbors(q, epsSq)
		coreDistQ := CoreDistance(ps, q, minPts, qNeighbors)

		ps.MarkProcessed(q)
		emit(ordering, ps, q, onProcessed)

		if coreDistQ != Undefined {
			updateSeeds(ps, qNeighbors, q, coreDistQ, seeds)
		}
	}
}

// emit appends point to the ordering at its current reachability and, if
// set, invokes the progress callback with the point just emitted — fixing
// the original implementation's documented bug, where the callback inside
// the seed loop received the outer point instead of the one just processed.
func emit(ordering *Ordering, ps *PointStore, point int, onProcessed func(int)) {
	ordering.Points = append(ordering.Points, point)
	ordering.Reachability = append(ordering.Reachability, ps.Reachability(point))
	if onProcessed != nil {
		onProcessed(point)
	}
}

// updateSeeds implements update_seeds from spec.md §4.6: for every
// unprocessed point in neighbors, it computes the reachability distance it
// would have from center and either inserts it into seeds (first time seen)
// or decreases its key (reachability improved), leaving it untouched
// otherwise.
func updateSeeds(ps *PointStore, neighbors []int, center int, coreDistCenter float64, seeds *SeedQueue) {
	centerCoords := ps.Get(center)
	for _, o := range neighbors {
		if ps.Processed(o) {
			continue
		}

		newRD := math.Max(coreDistCenter, SquaredDistance(centerCoords, ps.Get(o)))

		switch {
		case ps.Reachability(o) == Undefined:
			ps.SetReachability(o, newRD)
			seeds.Insert(o, newRD)
		case newRD < ps.Reachability(o):
			ps.SetReachability(o, newRD)
			seeds.UpdateKey(o, newRD)
		}
	}
}
