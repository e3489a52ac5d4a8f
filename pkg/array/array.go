package array

// Returns the index of the first element equal to value.
// Otherwise, returns -1.
func Index[T comparable](arr []T, value T) int {
	for i := 0; i < len(arr); i++ {
		if arr[i] == value {
			return i
		}
	}
	return -1
}

// Returns true if the array contains the given value.
func Contains[T comparable](arr []T, value T) bool {
	return Index(arr, value) > -1
}

func Map[T, U any](arr []T, fn func(T) U) []U {
	out := make([]U, 0, len(arr))
	for _, elem := range arr {
		out = append(out, fn(elem))
	}
	return out
}
