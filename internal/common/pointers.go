package common

// ToPtr returns a pointer to the given value.
func ToPtr[T any](value T) *T {
	return &value
}

// ValueOrEmpty dereferences the given pointer, returning the zero value
// for nil.
func ValueOrEmpty[T any](value *T) T {
	var empty T
	if value == nil {
		return empty
	}
	return *value
}
