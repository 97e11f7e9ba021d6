// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the input checks shared by the correlation
//    engine and the statistics helpers.
//  - Return sentinels wrapped with the validator tag; callers keep errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a
// typed nil *Dense stored in the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMinRows ensures m is non-nil and has at least n rows.
// Complexity: O(1).
func ValidateMinRows(m Matrix, n int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() < n {
		return validatorErrorf(fmt.Sprintf("ValidateMinRows(%d<%d)", m.Rows(), n), ErrTooFewRows)
	}

	return nil
}

// ValidateFinite ensures every element is finite. A Dense built under the
// default policy passes trivially; this guards matrices constructed with
// WithNoValidateNaNInf before they reach a measure.
//
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			if isNonFinite(v) {
				return validatorErrorf("ValidateFinite", ErrNaNInf)
			}
		}

		return nil
	}

	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if isNonFinite(v) {
				return validatorErrorf("ValidateFinite", ErrNaNInf)
			}
		}
	}

	return nil
}
