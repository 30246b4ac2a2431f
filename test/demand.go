// This file is part of Picocart.
//
// Picocart is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Picocart is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Picocart.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"testing"
)

// DemandEquality is the same as ExpectEquality() except that the test ends
// immediately on failure.
func DemandEquality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Fatalf("equation of type %T failed (%v - wanted %v)", value, value, expectedValue)
	}
}

// DemandSuccess is the same as ExpectSuccess() except that the test ends
// immediately on failure.
func DemandSuccess(t *testing.T, v interface{}) {
	t.Helper()
	if !ExpectSuccess(t, v) {
		t.FailNow()
	}
}

// DemandFailure is the same as ExpectFailure() except that the test ends
// immediately on failure.
func DemandFailure(t *testing.T, v interface{}) {
	t.Helper()
	if !ExpectFailure(t, v) {
		t.FailNow()
	}
}
