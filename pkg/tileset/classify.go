package tileset

type column struct{ x, y int }

// Classify sets UnderRamp on every record: a record is under a ramp when it
// lies on the ground floor (z == 0) and at least one other record shares its
// (x, y) column. Column sizes are taken over the whole slice, so the result
// does not depend on record order.
func Classify(records []Record) {
	counts := make(map[column]int, len(records))
	for _, r := range records {
		counts[column{r.X, r.Y}]++
	}
	for i := range records {
		r := &records[i]
		r.UnderRamp = r.Z == 0 && counts[column{r.X, r.Y}] > 1
	}
}
