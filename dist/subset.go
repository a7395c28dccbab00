package dist

import "fmt"

// Subset returns a new Dist containing exactly the labels in order, in
// that order, with distances copied from the receiver. The receiver is
// never mutated.
//
// Duplicate labels in order are rejected: the condensed representation
// keys items by label, so a repeated label has no distinct slot.
//
// Errors: ErrUnknownLabel, ErrDuplicateLabel, ErrBadShape (empty order).
// Complexity: O(k²) for k requested labels.
func (d *Dist) Subset(order []string) (*Dist, error) {
	if len(order) == 0 {
		return nil, fmt.Errorf("empty label order: %w", ErrBadShape)
	}

	positions := make([]int, len(order))
	seen := make(map[string]struct{}, len(order))
	for k, l := range order {
		p, err := d.position(l)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[l]; dup {
			return nil, fmt.Errorf("label %q: %w", l, ErrDuplicateLabel)
		}
		seen[l] = struct{}{}
		positions[k] = p
	}

	k := len(order)
	values := make([]float64, 0, k*(k-1)/2)
	for i := 0; i < k-1; i++ {
		for j := i + 1; j < k; j++ {
			values = append(values, d.values[d.offset(positions[i], positions[j])])
		}
	}

	return New(order, values)
}
