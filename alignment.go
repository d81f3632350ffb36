package strata

// Horizontal is the horizontal alignment of a text run within its bounds.
type Horizontal uint8

// Horizontal alignment constants.
const (
	HorizontalLeft Horizontal = iota
	HorizontalCenter
	HorizontalRight
)

// String returns a human-readable name for the alignment.
func (h Horizontal) String() string {
	switch h {
	case HorizontalLeft:
		return "Left"
	case HorizontalCenter:
		return "Center"
	case HorizontalRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Vertical is the vertical alignment of a text run within its bounds.
type Vertical uint8

// Vertical alignment constants.
const (
	VerticalTop Vertical = iota
	VerticalCenter
	VerticalBottom
)

// String returns a human-readable name for the alignment.
func (v Vertical) String() string {
	switch v {
	case VerticalTop:
		return "Top"
	case VerticalCenter:
		return "Center"
	case VerticalBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}
