// Package layout places the info lines next to the rendered image.
package layout

import (
	"bufio"
	"io"
	"strings"

	"github.com/handiism/greetcard/internal/model"
)

// Compose pairs image rows with info lines.
//
// When the image is taller than the info column by more than one row,
// the column is centered by adding half the difference (rounded down)
// as blank lines above and below. Rows stop at the shorter side. Info
// lines are trimmed; image rows are kept as they are.
func Compose(image, info []string) []model.CompositeRow {
	padded := info
	if pad := len(image) - len(info); pad > 1 {
		half := pad / 2
		padded = make([]string, 0, len(info)+2*half)
		padded = append(padded, make([]string, half)...)
		padded = append(padded, info...)
		padded = append(padded, make([]string, half)...)
	}

	n := min(len(image), len(padded))
	rows := make([]model.CompositeRow, n)
	for i := range n {
		rows[i] = model.CompositeRow{Image: image[i], Info: strings.TrimSpace(padded[i])}
	}
	return rows
}

// Write prints one row per line.
func Write(w io.Writer, rows []model.CompositeRow) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		if _, err := bw.WriteString(row.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
