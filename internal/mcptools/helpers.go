package mcptools

const defaultLimit = 50

func applyLimit[T any](items []T, limit int) []T {
	if limit <= 0 {
		limit = defaultLimit
	}
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
