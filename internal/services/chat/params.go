package chat

// IncludeSamplingParam reports whether a sampling parameter should be
// carried in the upstream payload. Values equal to their declared default
// are omitted entirely, keeping the outbound request minimal.
func IncludeSamplingParam(value, def float32) bool {
	return value != def
}
