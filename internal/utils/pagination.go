package utils

// NormalizePage clamps page to at least 1 and limit to (0, MAX_PAGE_SIZE],
// falling back to PAGE_SIZE when limit is not set.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	maxLimit := GetIntConfig("MAX_PAGE_SIZE", 100)
	if limit < 1 {
		limit = GetIntConfig("PAGE_SIZE", 6)
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
