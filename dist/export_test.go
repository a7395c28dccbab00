package dist

// Offset exposes the private condensed addressing function to tests.
// The bijection it implements is load-bearing for every component, so
// it is tested directly and not only through Distance.
func (d *Dist) Offset(i, j int) int { return d.offset(i, j) }
