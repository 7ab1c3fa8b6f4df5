package usecase

import (
	"fmt"
	"math"
	"strings"
)

// explainMatch derives a human-readable justification for a match. When the
// query and candidate share style tags the explanation names them; otherwise
// it falls back to the score expressed as a confidence percentage.
func explainMatch(queryTags, candidateTags []string, total float64) string {
	shared := sharedTags(normalizeTags(queryTags), normalizeTags(candidateTags))
	if len(shared) > 0 {
		return fmt.Sprintf("This item matches your style with similar %s.", strings.Join(shared, ", "))
	}
	return fmt.Sprintf("This item matches your style preferences with %d%% confidence.",
		int(math.Round(total*100)))
}
