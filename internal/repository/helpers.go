package repository

// contentToValue converts an action's content to a value suitable for
// SQLite storage. Absent content is stored as SQL NULL so the round trip
// preserves the distinction from an empty string.
func contentToValue(content string) interface{} {
	if content == "" {
		return nil
	}
	return content
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
