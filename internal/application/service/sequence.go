package service

import "strconv"

// nextSequentialNumber derives the next document number from the highest
// existing one, e.g. "T3" -> "T4". The highest number is determined by
// string ordering upstream, and the numeric suffix of that value is
// incremented here. Falls back to <prefix>1 when there is no previous
// number or its suffix does not parse.
func nextSequentialNumber(last, prefix string) string {
	if len(last) > len(prefix) {
		if n, err := strconv.Atoi(last[len(prefix):]); err == nil {
			return prefix + strconv.Itoa(n+1)
		}
	}
	return prefix + "1"
}
