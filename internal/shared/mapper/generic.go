// Package mapper holds the slice helpers shared by the persistence mappers
// and the HTTP DTOs.
package mapper

import "fmt"

// MapSlice applies fn to each element. A nil slice stays nil so JSON
// encoders can tell "absent" from "empty".
func MapSlice[T any, R any](items []T, fn func(T) R) []R {
	if items == nil {
		return nil
	}

	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Rows converts stored rows into domain values. Nil rows and nil results
// are dropped; the first conversion error aborts the batch and names the
// offending row id.
func Rows[M any, E any](rows []*M, convert func(*M) (*E, error), rowID func(*M) uint) ([]*E, error) {
	if rows == nil {
		return nil, nil
	}

	out := make([]*E, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		entity, err := convert(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowID(row), err)
		}
		if entity != nil {
			out = append(out, entity)
		}
	}
	return out, nil
}
