package tileset

// Record is one tile projected for reporting.
type Record struct {
	X, Y, Z int

	// Image is nil when the tile has no tile type image.
	Image *string

	// RampPoints is nil when the tile has no items flag.
	RampPoints *bool

	// UnderRamp is derived by [Classify].
	UnderRamp bool
}

// ImageName returns the image, or "" when the record has none.
func (r Record) ImageName() string {
	if r.Image == nil {
		return ""
	}
	return *r.Image
}

// IsRampPoint reports whether the record carries rampPoints=true.
func (r Record) IsRampPoint() bool {
	return r.RampPoints != nil && *r.RampPoints
}

// Category is the presentation group of a record.
type Category int

// Categories in presentation order.
const (
	CategoryOther Category = iota
	CategoryRampPoint
	CategoryUnderRamp
	CategoryEvacuation
)

// Categories lists all categories in presentation order.
var Categories = []Category{CategoryOther, CategoryRampPoint, CategoryUnderRamp, CategoryEvacuation}

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryOther:
		return "other"
	case CategoryRampPoint:
		return "rampPoint"
	case CategoryUnderRamp:
		return "underRamp"
	case CategoryEvacuation:
		return "evacuation"
	default:
		return "unknown"
	}
}

// DefaultEvacuationImages are the images that mark evacuation tiles.
var DefaultEvacuationImages = []string{"ev1.png", "ev2.png", "ev3.png"}

// ImageSet is a set of image names.
type ImageSet map[string]struct{}

// NewImageSet returns a set holding images.
func NewImageSet(images ...string) ImageSet {
	s := make(ImageSet, len(images))
	for _, img := range images {
		s[img] = struct{}{}
	}
	return s
}

// Contains reports whether image is in the set. A nil image is never contained.
func (s ImageSet) Contains(image *string) bool {
	if image == nil {
		return false
	}
	_, ok := s[*image]
	return ok
}

// Categorize returns the category of r. Evacuation is decided by image
// alone; under-ramp wins over ramp-point.
func Categorize(r Record, evacuation ImageSet) Category {
	switch {
	case evacuation.Contains(r.Image):
		return CategoryEvacuation
	case r.UnderRamp:
		return CategoryUnderRamp
	case r.IsRampPoint():
		return CategoryRampPoint
	default:
		return CategoryOther
	}
}
