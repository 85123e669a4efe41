package core

// Match tests a parsed value against the exclusion set for a field. Scalars
// are treated as one-element sets and arrays as their element set, so the
// test is a plain set intersection regardless of the field's arity. It
// returns the first excluded value found so the rejection can be logged.
func (r FilterRules) Match(field string, v Value) (int64, bool) {
	excluded, ok := r[field]
	if !ok {
		return 0, false
	}
	for _, candidate := range v.IntSet() {
		for _, x := range excluded {
			if candidate == x {
				return candidate, true
			}
		}
	}
	return 0, false
}

// Fields returns the filter-configured field names, nil when the entity has
// no filters.
func (r FilterRules) Fields() []string {
	if len(r) == 0 {
		return nil
	}
	fields := make([]string, 0, len(r))
	for f := range r {
		fields = append(fields, f)
	}
	return fields
}
