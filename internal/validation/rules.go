// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package validation

import (
	"fmt"
	"slices"
	"strings"
)

// Number is the set of values accepted by Positive.
// time.Duration is covered by ~int64.
type Number interface {
	~int | ~int64 | ~uint32
}

// Positive fails when value is zero or negative
func Positive[T Number](field string, value T) Validator {
	return ValidatorFunc(func() error {
		if value <= 0 {
			return fmt.Errorf("the [%s] must be greater than zero, got %v", field, value)
		}
		return nil
	})
}

// Required fails when value is blank
func Required(field, value string) Validator {
	return ValidatorFunc(func() error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("the [%s] is required", field)
		}
		return nil
	})
}

// OneOf fails when value, ignoring case, is not one of allowed
func OneOf(field, value string, allowed ...string) Validator {
	return ValidatorFunc(func() error {
		if slices.Contains(allowed, strings.ToLower(strings.TrimSpace(value))) {
			return nil
		}
		return fmt.Errorf("the [%s] %q must be one of %s", field, value, strings.Join(allowed, ", "))
	})
}
