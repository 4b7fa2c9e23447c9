package tileset

import "slices"

// ImageCount is the number of ordinary tiles using one image.
type ImageCount struct {
	Image  string `json:"image"`
	Amount int    `json:"amount"`

	// Path is the design image file, empty when it could not be resolved.
	Path string `json:"path,omitempty"`
}

// Eligible reports whether r is counted by [Aggregate]: it has an image and
// is neither a ramp point, under a ramp, nor an evacuation tile.
// Placeholder tiles inserted by densification are eligible.
func Eligible(r Record, evacuation ImageSet) bool {
	return r.Image != nil && Categorize(r, evacuation) == CategoryOther
}

// Aggregate counts eligible records per image. Counts are ordered by
// descending amount; equal amounts keep the order in which their image was
// first seen in records.
func Aggregate(records []Record, evacuation ImageSet) []ImageCount {
	index := make(map[string]int)
	var counts []ImageCount
	for _, r := range records {
		if !Eligible(r, evacuation) {
			continue
		}
		img := *r.Image
		i, ok := index[img]
		if !ok {
			i = len(counts)
			index[img] = i
			counts = append(counts, ImageCount{Image: img})
		}
		counts[i].Amount++
	}

	slices.SortStableFunc(counts, func(a, b ImageCount) int {
		return b.Amount - a.Amount
	})
	return counts
}
