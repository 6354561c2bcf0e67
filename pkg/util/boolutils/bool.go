package boolutils

// IsTrueText reports whether s is exactly the text "true".
// Any other value, including "TRUE", "1" or "yes", is false.
func IsTrueText(s string) bool {
	return s == "true"
}

// ToBoolPtr returns nil for an empty string, otherwise a pointer to IsTrueText(s).
func ToBoolPtr(s string) *bool {
	if s == "" {
		return nil
	}
	value := IsTrueText(s)
	return &value
}
