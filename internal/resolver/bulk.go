package resolver

import (
	"context"
	"log/slog"

	"github.com/beholdr/grimoire/internal/entities"
)

// ResolveAll expands every copy-reference in recs and returns the resolved
// records plus the identity keys of the records that could not be resolved.
//
// Copy targets may themselves be copies and the input order guarantees
// nothing, so resolution runs as a fixed-point loop: each pass attempts
// every still-pending record against the pool of already-resolved records
// plus the remaining pending ones, and stops once a pass makes no progress.
// One bad record never aborts the rest; stragglers are warn-logged and
// dropped.
func ResolveAll(ctx context.Context, recs []entities.Record) (resolved []entities.Record, dropped []string) {
	resolved = make([]entities.Record, 0, len(recs))
	var pending []entities.Record

	for _, rec := range recs {
		if rec.HasCopy() {
			pending = append(pending, rec)
		} else {
			resolved = append(resolved, rec)
		}
	}

	// On valid inputs each pass resolves at least one record, so the pass
	// cap is unreachable; it is a safety valve for pathological data.
	maxPasses := len(recs) + 1
	for pass := 0; len(pending) > 0 && pass < maxPasses; pass++ {
		pool := make([]entities.Record, 0, len(resolved)+len(pending))
		pool = append(pool, resolved...)
		pool = append(pool, pending...)

		var still []entities.Record
		for _, rec := range pending {
			out, err := Resolve(rec, pool, nil)
			if err != nil {
				still = append(still, rec)
				continue
			}
			resolved = append(resolved, out)
		}

		if len(still) == len(pending) {
			// No progress this pass; whatever remains is unresolvable.
			break
		}
		pending = still
	}

	for _, rec := range pending {
		key := rec.Key()
		dropped = append(dropped, key)
		slog.WarnContext(ctx, "dropping beast with unresolvable copy-reference",
			"name", rec.Name(),
			"source", rec.Source(),
			"key", key)
	}

	return resolved, dropped
}
