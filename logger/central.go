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
	"fmt"
	"io"
)

// the maximum number of entries in the central logger.
const maxCentral = 256

var central = newLogger(maxCentral)

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	central.log(tag, fmt.Sprintf(detail, args...))
}

// Clear all entries from the central logger.
func Clear() {
	central.clear()
}

// Write the contents of the central logger to output.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last number of entries in the central logger to output.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho instructs the central logger to echo new entries to output as they
// arrive. A nil output turns echoing off. If writeRecent is true then the
// current contents of the log are written to output immediately.
func SetEcho(output io.Writer, writeRecent bool) {
	central.echo = output
	if output != nil && writeRecent {
		central.write(output)
	}
}

// BorrowLog gives the caller momentary access to the live log entries. The
// slice must not be retained after f returns.
func BorrowLog(f func([]Entry)) {
	f(central.entries)
}
