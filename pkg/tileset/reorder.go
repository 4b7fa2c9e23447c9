package tileset

// Reorder returns records grouped by category in presentation order
// (Other, RampPoint, UnderRamp, Evacuation). Records keep their relative
// order within a group. The input slice is not modified.
func Reorder(records []Record, evacuation ImageSet) []Record {
	groups := make([][]Record, len(Categories))
	for _, r := range records {
		c := Categorize(r, evacuation)
		groups[c] = append(groups[c], r)
	}

	out := make([]Record, 0, len(records))
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// GroupSizes returns the number of records per category.
func GroupSizes(records []Record, evacuation ImageSet) map[Category]int {
	sizes := make(map[Category]int, len(Categories))
	for _, r := range records {
		sizes[Categorize(r, evacuation)]++
	}
	return sizes
}
