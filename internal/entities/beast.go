package entities

// CopyRef is the parsed view of a beast record's _copy attribute: the base
// record it inherits from plus the modifications to apply during resolution.
// A record carrying one is incomplete until resolved.
type CopyRef struct {
	Name   string
	Source string
	Mods   []Mod
}

// Key returns the normalized identity key of the referenced base record
func (c *CopyRef) Key() string {
	return RecordKey(c.Name, c.Source)
}

// Mod is a single modification instruction applied to a resolved base record
// before the copying record's own fields are merged on top.
type Mod struct {
	Mode    string
	Replace string
	With    string
}

// ModReplaceTxt is the only modification mode this layer implements:
// case-insensitive global text replacement across every string field.
const ModReplaceTxt = "replaceTxt"

// HasCopy reports whether the record carries a copy-reference
func (r Record) HasCopy() bool {
	return r.Map(FieldCopy) != nil
}

// Copy parses the record's _copy attribute. Returns nil if the record has
// none or the attribute is malformed (not a map or missing name/source).
func (r Record) Copy() *CopyRef {
	raw := r.Map(FieldCopy)
	if raw == nil {
		return nil
	}

	cr := Record(raw)
	ref := &CopyRef{
		Name:   cr.Name(),
		Source: cr.Source(),
	}
	if ref.Name == "" || ref.Source == "" {
		return nil
	}

	// _mod may be a single mod map or an ordered list of them
	switch m := raw[FieldMod].(type) {
	case map[string]any:
		if mod, ok := parseMod(m); ok {
			ref.Mods = append(ref.Mods, mod)
		}
	case []any:
		for _, item := range m {
			mm, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if mod, ok := parseMod(mm); ok {
				ref.Mods = append(ref.Mods, mod)
			}
		}
	}

	return ref
}

func parseMod(m map[string]any) (Mod, bool) {
	rm := Record(m)
	mod := Mod{
		Mode:    rm.Str("mode"),
		Replace: rm.Str("replace"),
		With:    rm.Str("with"),
	}
	if mod.Mode == "" {
		return Mod{}, false
	}
	return mod, true
}
