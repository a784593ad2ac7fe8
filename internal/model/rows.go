package model

// CompositeRow is one line of the final output: an image row and an info row.
type CompositeRow struct {
	// Image is the pre-rendered ANSI image row, emitted untouched.
	Image string

	// Info is the styled info line, already trimmed.
	Info string
}

// String joins the two columns with a horizontal tab.
func (r CompositeRow) String() string {
	return r.Image + "\t" + r.Info
}
