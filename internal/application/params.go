package application

// stringArg extracts a string argument from the arguments map.
// It reports false when the argument is absent, not a string, or empty, so
// required-argument validation happens before any network call.
func stringArg(args map[string]interface{}, name string) (string, bool) {
	value, exists := args[name]
	if !exists {
		return "", false
	}
	s, ok := value.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// intArg extracts an integer argument from the arguments map, substituting
// fallback when the argument is absent or not a positive number. JSON
// decoding delivers numbers as float64.
func intArg(args map[string]interface{}, name string, fallback int) int {
	switch v := args[name].(type) {
	case float64:
		if n := int(v); n > 0 {
			return n
		}
	case int:
		if v > 0 {
			return v
		}
	}
	return fallback
}
