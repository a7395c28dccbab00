package dist

import "fmt"

// Pairs returns the distances for the element-wise pairs
// (origins[k], destinations[k]).
//
// All labels are resolved before any distance is read, so a failing
// call performs no partial extraction.
//
// Errors: ErrLengthMismatch, ErrUnknownLabel.
// Complexity: O(k) for k pairs.
func (d *Dist) Pairs(origins, destinations []string) ([]float64, error) {
	if len(origins) != len(destinations) {
		return nil, fmt.Errorf("%d origins vs %d destinations: %w",
			len(origins), len(destinations), ErrLengthMismatch)
	}

	from := make([]int, len(origins))
	to := make([]int, len(destinations))
	for k := range origins {
		p, err := d.position(origins[k])
		if err != nil {
			return nil, err
		}
		q, err := d.position(destinations[k])
		if err != nil {
			return nil, err
		}
		from[k], to[k] = p, q
	}

	out := make([]float64, len(origins))
	for k := range out {
		if from[k] == to[k] {
			continue // zero diagonal
		}
		out[k] = d.values[d.offset(from[k], to[k])]
	}

	return out, nil
}
