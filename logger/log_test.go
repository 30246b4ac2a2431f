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

package logger

import (
	"strings"
	"testing"

	"github.com/jetsetilly/picocart/test"
)

func TestLogger(t *testing.T) {
	l := newLogger(100)
	w := &strings.Builder{}

	l.write(w)
	test.ExpectEquality(t, w.String(), "")

	l.log("test", "this is a test")
	l.write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the buffer before continuing, makes comparisons easier to manage
	w.Reset()

	l.log("test2", "this is another test")
	l.write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a tail() is okay
	w.Reset()
	l.tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	l.tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	l.tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatCollapse(t *testing.T) {
	l := newLogger(100)
	w := &strings.Builder{}

	l.log("tag", "same detail")
	l.log("tag", "same detail")
	l.log("tag", "same detail")
	l.write(w)
	test.ExpectEquality(t, w.String(), "tag: same detail (repeat x3)\n")
	test.ExpectEquality(t, len(l.entries), 1)
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(2)

	l.log("a", "1")
	l.log("b", "2")
	l.log("c", "3")
	test.ExpectEquality(t, len(l.entries), 2)

	w := &strings.Builder{}
	l.write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}
