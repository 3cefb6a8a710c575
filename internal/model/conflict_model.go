package model

// ConflictSets are the deduplicated relation matches accumulated across all
// candidate ingredients of one safety check.
type ConflictSets struct {
	ConflictingAllergens []string
	TraceAllergens       []string
	ConflictingDiets     []string
}

// Empty reports whether no conflicts of any kind were found.
func (c *ConflictSets) Empty() bool {
	return len(c.ConflictingAllergens) == 0 &&
		len(c.TraceAllergens) == 0 &&
		len(c.ConflictingDiets) == 0
}
