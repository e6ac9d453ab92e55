package model

func requireString(field string, value string, max int) error {
	if value == "" {
		return invalidField(field, "is required")
	}
	if len(value) > max {
		return invalidField(field, "must be at most %d characters", max)
	}
	return nil
}

// optionalString accepts the empty string, which means "absent".
func optionalString(field string, value string, max int) error {
	if value == "" {
		return nil
	}
	return requireString(field, value, max)
}

func requireID(field string, value int64) error {
	if value <= 0 {
		return invalidField(field, "must be a positive number")
	}
	return nil
}
