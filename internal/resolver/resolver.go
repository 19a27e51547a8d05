// Package resolver expands copy-with-modifications beast records into fully
// materialized records.
//
// Sourcebook data frequently defines a creature as "same as creature X, but
// replace these fields". Such a record carries a _copy reference naming the
// base (name, source) and an optional ordered list of modifications. Until
// resolved, the record is incomplete and must not be indexed or displayed.
package resolver

import (
	"regexp"

	"github.com/beholdr/grimoire/internal/entities"
	"github.com/beholdr/grimoire/internal/errors"
)

// Resolve expands rec's copy-reference chain against pool and returns a
// fully merged record with no copy-reference remaining.
//
// A record without a copy-reference comes back as a shallow defensive copy.
// Otherwise the base record is located in pool by normalized (name, source),
// recursively resolved with the same seen set, modified per the reference's
// modification list, and finally overlaid with every field the copying
// record declares itself. The copying record's own fields always win.
//
// Returns errors.CodeFailedPrecondition when the reference chain cycles and
// errors.CodeNotFound when a named base record is absent from pool. Both are
// fatal for rec only; bulk callers catch them per record.
func Resolve(rec entities.Record, pool []entities.Record, seen map[string]struct{}) (entities.Record, error) {
	ref := rec.Copy()
	if ref == nil {
		return rec.Clone(), nil
	}

	if seen == nil {
		seen = make(map[string]struct{})
	}

	key := ref.Key()
	if _, ok := seen[key]; ok {
		return nil, errors.FailedPreconditionf("reference cycle detected: %s", key).
			WithMeta("name", ref.Name).
			WithMeta("source", ref.Source)
	}
	seen[key] = struct{}{}

	base := findRecord(pool, key)
	if base == nil {
		return nil, errors.NotFoundf("base record %q (%s) not found", ref.Name, ref.Source).
			WithMeta("name", ref.Name).
			WithMeta("source", ref.Source)
	}

	resolved, err := Resolve(base, pool, seen)
	if err != nil {
		return nil, err
	}

	applyMods(resolved, ref.Mods)

	// Merge: the copying record's explicit fields overwrite inherited ones.
	// The copy-reference itself never survives into the output.
	for k, v := range rec {
		if k == entities.FieldCopy || k == entities.FieldMod {
			continue
		}
		resolved[k] = v
	}

	return resolved, nil
}

func findRecord(pool []entities.Record, key string) entities.Record {
	for _, candidate := range pool {
		if candidate.Key() == key {
			return candidate
		}
	}
	return nil
}

// applyMods applies each modification in order to rec, in place. The only
// implemented mode is replaceTxt: case-insensitive global text replacement
// across every string-valued field. Unknown modes are a silent no-op; the
// upstream data format defines modes this app's data never exercises.
func applyMods(rec entities.Record, mods []entities.Mod) {
	for _, mod := range mods {
		if mod.Mode != entities.ModReplaceTxt {
			continue
		}
		replaceText(rec, mod.Replace, mod.With)
	}
}

func replaceText(rec entities.Record, pattern, with string) {
	if pattern == "" {
		return
	}

	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		// Upstream patterns are regular expressions; a malformed one falls
		// back to a literal match.
		re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(pattern))
	}

	for k, v := range rec {
		if s, ok := v.(string); ok {
			rec[k] = re.ReplaceAllString(s, with)
		}
	}
}
