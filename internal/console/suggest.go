package console

import "github.com/agnivade/levenshtein"

// closestCategory returns the known category nearest to c when it lies within
// maxDistance edits. Ties go to the category seen first.
func closestCategory(c string, known []string, maxDistance int) (string, bool) {
	if maxDistance <= 0 || c == "" {
		return "", false
	}
	best, bestDist := "", maxDistance+1
	for _, k := range known {
		if k == c {
			continue
		}
		if d := levenshtein.ComputeDistance(c, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best, best != "" && bestDist <= maxDistance
}
