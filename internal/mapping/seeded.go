package mapping

import "fmt"

// Seeded stats replace the ratings and counters the backend never stored.
// They are pure functions of the document id, so the same paper shows the
// same download count on every render, every process, every test run.

// hashID is a 31-multiplier rolling hash folded into [0, 2^31).
func hashID(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h*31 + int(s[i])) % (1 << 31)
	}
	if h < 0 {
		h = -h
	}
	return h
}

// seededInt returns a stable value in [low, high] derived from id. The
// field salt keeps different stats of the same document from moving in
// lockstep.
func seededInt(id, field string, low, high int) int {
	return low + hashID(id+"|"+field)%(high-low+1)
}

// seededRating returns a one-decimal rating in [3.0, 5.0].
func seededRating(id string) float64 {
	return float64(seededInt(id, "rating", 30, 50)) / 10
}

// seededFileSize returns a size string between "1.0 MB" and "6.0 MB".
func seededFileSize(id string) string {
	tenths := seededInt(id, "filesize", 10, 60)
	return fmt.Sprintf("%d.%d MB", tenths/10, tenths%10)
}
