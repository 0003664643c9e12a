package utils

import "strings"

// Map applies a function to each element of a slice and returns a new slice
func Map[T, U any](slice []T, fn func(T) U) []U {
	result := make([]U, len(slice))
	for i, v := range slice {
		result[i] = fn(v)
	}
	return result
}

// Filter returns a new slice containing only elements that satisfy the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	var result []T
	for _, v := range slice {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// Join concatenates elements of a string slice with a separator
func Join(slice []string, separator string) string {
	if len(slice) == 0 {
		return ""
	}
	if len(slice) == 1 {
		return slice[0]
	}

	// Calculate total length
	n := len(separator) * (len(slice) - 1)
	for _, s := range slice {
		n += len(s)
	}

	// Build the result
	var result strings.Builder
	result.Grow(n)
	result.WriteString(slice[0])
	for _, s := range slice[1:] {
		result.WriteString(separator)
		result.WriteString(s)
	}
	return result.String()
}
