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

// Package logger is the central log for the project. Log entries are accrued
// in memory and can be written out on demand with the Write() and Tail()
// functions, or echoed to an io.Writer as they arrive with SetEcho().
//
// Logging is kept out of the responder's per-cycle path. Nothing in this
// package is safe to call from inside the bus loop.
package logger
