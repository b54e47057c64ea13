package imageio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/mazegraph/grid"
)

// DecodeText reads an integer matrix, one row per line with values separated
// by whitespace or commas. Blank lines and lines starting with '#' are
// skipped. Cells equal to opts.PathValue are paths. Ragged rows are returned
// as read; the validator rejects them.
func DecodeText(r io.Reader, opts grid.Options) (grid.Matrix, error) {
	var values [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("imageio: line %d: %w", line, err)
			}
			row[i] = v
		}
		values = append(values, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("imageio: read text: %w", err)
	}
	if len(values) == 0 {
		return nil, ErrEmptyImage
	}

	return grid.MatrixFromInts(values, opts), nil
}
