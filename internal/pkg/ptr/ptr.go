package ptr

func Of[T any](v T) *T {
	return &v
}

// NonZero returns nil for the zero value so optional ids serialize as absent.
func NonZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
