package content

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"sort"
)

// deepMergeKeys enumerates the nested objects that receive one additional
// level of spread-merge beyond the per-section shallow merge. Sections and
// keys not listed here are only as complete as whatever was stored; that
// asymmetry is relied upon by consumers of the state and must not change.
var deepMergeKeys = map[string]map[string]bool{
	"site": {
		"contact": true,
		"footer":  true,
	},
	"home": {
		"sectionLabels": true,
		"ctaBlock":      true,
		"sections":      true,
		"bigShowcase":   true,
	},
	"enrollmentForm": {
		"fields": true,
	},
	"contactForm": {
		"fields": true,
	},
}

// Reconcile produces a complete State from the canonical default plus a
// possibly-partial stored snapshot. A nil, empty, or unparseable snapshot
// falls back to the default in full: loading never fails, at the cost of
// losing whatever could not be read.
//
// Merge policy, per top-level section:
//   - both objects: stored keys are spread over default keys one level
//     deep; for the nested objects listed in deepMergeKeys, one further
//     level is spread-merged so a partial sub-object still inherits the
//     rest of its fields from the default.
//   - arrays (course lists, notices, form field lists): the stored array
//     replaces the default wholesale when non-empty; an empty or missing
//     stored array keeps the default.
//   - scalars: stored wins.
//
// Unknown keys inside merged dictionaries (e.g. home.sections) are kept.
func Reconcile(raw []byte) State {
	def := Default()

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return def
	}

	var stored map[string]json.RawMessage
	if err := json.Unmarshal(raw, &stored); err != nil {
		slog.Warn("stored site state unreadable, using defaults", "error", err)
		return def
	}

	defRaw, err := json.Marshal(def)
	if err != nil {
		slog.Error("marshal default state", "error", err)
		return def
	}
	base := map[string]json.RawMessage{}
	if err := json.Unmarshal(defRaw, &base); err != nil {
		slog.Error("unmarshal default state", "error", err)
		return def
	}

	for section, defVal := range base {
		storedVal, ok := stored[section]
		if !ok {
			continue
		}
		base[section] = mergeValue(defVal, storedVal, deepMergeKeys[section])
	}

	merged, err := json.Marshal(base)
	if err != nil {
		slog.Error("marshal merged state", "error", err)
		return def
	}

	var state State
	if err := json.Unmarshal(merged, &state); err != nil {
		slog.Warn("merged site state does not fit the schema, using defaults", "error", err)
		return def
	}

	normalizeSectionOrder(&state)
	return state
}

// mergeValue applies the merge policy to a single value. deep names the
// sub-keys that get one extra object-merge level; it is nil below the
// covered depth.
func mergeValue(def, stored json.RawMessage, deep map[string]bool) json.RawMessage {
	switch {
	case isObject(def) && isObject(stored):
		return mergeObject(def, stored, deep)
	case isArray(stored):
		if emptyArray(stored) {
			return def
		}
		return stored
	default:
		return stored
	}
}

// mergeObject spreads stored keys over default keys. Keys present only in
// the stored object are kept.
func mergeObject(def, stored json.RawMessage, deep map[string]bool) json.RawMessage {
	var d, s map[string]json.RawMessage
	if err := json.Unmarshal(def, &d); err != nil {
		return stored
	}
	if err := json.Unmarshal(stored, &s); err != nil {
		return def
	}

	for k, sv := range s {
		dv, known := d[k]
		switch {
		case known && deep[k] && isObject(dv) && isObject(sv):
			d[k] = mergeObject(dv, sv, nil)
		case known && isArray(sv) && emptyArray(sv):
			// Empty stored array keeps the default entries.
		default:
			d[k] = sv
		}
	}

	out, err := json.Marshal(d)
	if err != nil {
		return def
	}
	return out
}

// normalizeSectionOrder keeps home.sectionOrder a permutation of the
// home.sections keys: unknown ids are dropped from the order, missing
// ones appended (default order first, any remainder sorted for
// determinism). The sections map itself is never modified.
func normalizeSectionOrder(state *State) {
	sections := state.Home.Sections
	if sections == nil {
		return
	}

	seen := map[string]bool{}
	var order []string
	for _, id := range state.Home.SectionOrder {
		if _, ok := sections[id]; ok && !seen[id] {
			order = append(order, id)
			seen[id] = true
		}
	}

	for _, id := range defaultSectionOrder {
		if _, ok := sections[id]; ok && !seen[id] {
			order = append(order, id)
			seen[id] = true
		}
	}

	var rest []string
	for id := range sections {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	order = append(order, rest...)

	state.Home.SectionOrder = order
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func emptyArray(raw json.RawMessage) bool {
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return false
	}
	return len(arr) == 0
}
