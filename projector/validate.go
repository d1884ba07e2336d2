package projector

// FieldValidationResult partitions the requested fields into the ones present in the table and the ones that are not.
// ValidFields follows the table's column order and InvalidFields the order of the request; both are de-duplicated.
type FieldValidationResult struct {
	IsValid       bool
	InvalidFields []string
	ValidFields   []string
}

// ValidateFields matches requested field names against the available columns using exact, case-sensitive equality.
func ValidateFields(requested []string, available []string) FieldValidationResult {
	requestedSet := make(map[string]bool, len(requested))
	for _, field := range requested {
		requestedSet[field] = true
	}

	availableSet := make(map[string]bool, len(available))
	validFields := make([]string, 0, len(requested))
	for _, column := range available {
		if availableSet[column] {
			continue
		}
		availableSet[column] = true
		if requestedSet[column] {
			validFields = append(validFields, column)
		}
	}

	invalidFields := make([]string, 0)
	reported := make(map[string]bool)
	for _, field := range requested {
		if availableSet[field] || reported[field] {
			continue
		}
		reported[field] = true
		invalidFields = append(invalidFields, field)
	}

	return FieldValidationResult{
		IsValid:       len(invalidFields) == 0,
		InvalidFields: invalidFields,
		ValidFields:   validFields,
	}
}
