package core

import "log/slog"

// Validator drives parsing and filtering for one entity's records, splitting
// them into accepted and rejected partitions. Per-record failures never
// escape it; every rejection is recorded in the log stream instead.
type Validator struct {
	logger *slog.Logger
}

// NewValidator returns a validator that reports rejections to logger.
func NewValidator(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{logger: logger}
}

// Validate checks every record against the entity's schema and filters.
//
// A record without a usable id is skipped outright: it belongs to neither
// partition and is not counted as invalid. Otherwise the first malformed
// field or filter match rejects the record immediately; later fields are not
// evaluated.
func (v *Validator) Validate(def *EntityDefinition, records []RawRecord) ValidationResult {
	result := ValidationResult{Entity: def.Name}

	for _, rec := range records {
		if IsSentinel(rec[IdentityField]) {
			continue
		}
		parsed, ok := v.validateRecord(def, rec)
		if !ok {
			result.Invalid++
			continue
		}
		result.Valid = append(result.Valid, parsed)
	}

	v.logger.Info("validation complete",
		"entity", def.Name,
		"valid", len(result.Valid),
		"invalid", result.Invalid,
	)
	return result
}

// validateRecord walks the schema in field order. The schema, not the dump's
// header, decides which fields exist: extra dump columns (including a
// blank-named one) are ignored, and a missing column behaves as an empty
// cell.
func (v *Validator) validateRecord(def *EntityDefinition, rec RawRecord) (ParsedRecord, bool) {
	id := rec[IdentityField]
	values := make(map[string]Value, len(def.Fields))

	for _, f := range def.Fields {
		if f.Type == TypeUnknown {
			// Schema misconfiguration, not bad data: keep the record but
			// treat the field as unparsed so it lands as NULL.
			v.logger.Warn("no parser for field type",
				"entity", def.Name, "id", id, "field", f.Name)
			values[f.Name] = Value{Type: TypeUnknown}
			continue
		}

		raw := rec[f.Name]
		val, err := ParseValue(f.Type, f.Name, raw)
		if err != nil {
			v.logger.Warn("rejecting record: malformed field",
				"entity", def.Name, "id", id,
				"field", f.Name, "type", f.Type.String(), "value", raw)
			return ParsedRecord{}, false
		}

		// Filter rejections are logged apart from parse failures so that
		// deliberately excluded rows are not mistaken for malformed data.
		if matched, hit := def.Filters.Match(f.Name, val); hit {
			v.logger.Info("rejecting record: filter match",
				"entity", def.Name, "id", id,
				"field", f.Name, "matched", matched)
			return ParsedRecord{}, false
		}

		values[f.Name] = val
	}

	return ParsedRecord{ID: id, Values: values}, true
}
