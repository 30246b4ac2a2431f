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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function.
//
// Unlike errors made with the fmt package, a curated error remembers the
// pattern it was created with. The pattern can then be used to identify the
// error without string comparison of the formatted message:
//
//	e := curated.Errorf("cartridge: unsupported size (%d)", size)
//
//	if curated.Is(e, "cartridge: unsupported size (%d)") {
//		...
//	}
//
// The Has() function is similar to Is() but checks for the pattern anywhere
// in the chain of wrapped curated errors, rather than only at the head.
package curated
