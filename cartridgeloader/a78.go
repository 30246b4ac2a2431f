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

package cartridgeloader

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/jetsetilly/picocart/curated"
)

// the A78 header is a fixed 128 bytes in front of the image data.
const a78HeaderSize = 128

// A78Header is the parsed form of the header found in .a78 files. The
// header describes the cartridge hardware the image expects: size, bank
// switching, extra RAM and sound chips, controllers and video format.
type A78Header struct {
	Version uint8
	Name    string
	Size    int

	// the raw type flag bytes
	TypeA uint8
	TypeB uint8

	// decoded feature names from the type flags, in the order they were
	// found
	Features []string

	Controller1 string
	Controller2 string
	Video       string
}

// feature flags in the TypeA byte.
var typeAFeatures = []struct {
	mask uint8
	name string
}{
	{0x01, "ACTIVISION"},
	{0x02, "ABSOLUTE"},
	{0x04, "POKEY @0440"},
	{0x08, "YM2151 @0461"},
	{0x10, "SOUPER"},
	{0x20, "BANKSET"},
	{0x40, "EXRAM/M2"},
	{0x80, "POKEY @0800"},
}

// feature flags in the TypeB byte.
var typeBFeatures = []struct {
	mask uint8
	name string
}{
	{0x01, "POKEY @4000"},
	{0x02, "SUPER"},
	{0x04, "EXRAM"},
	{0x08, "EXROM"},
	{0x10, "EXFIX"},
	{0x20, "EXRAM/X2"},
	{0x40, "POKEY @0450"},
	{0x80, "EXRAM/A8"},
}

// ParseA78 reads the 128 byte header from the front of an .a78 file.
func ParseA78(data []byte) (A78Header, error) {
	if len(data) < a78HeaderSize {
		return A78Header{}, curated.Errorf("a78: file too short for header (%d bytes)", len(data))
	}

	hdr := A78Header{
		Version: data[0],
		Name:    strings.TrimRight(string(data[17:49]), "\x00 "),
		Size:    int(binary.BigEndian.Uint32(data[49:53])),
		TypeA:   data[53],
		TypeB:   data[54],
	}

	for _, f := range typeAFeatures {
		if hdr.TypeA&f.mask != 0 {
			hdr.Features = append(hdr.Features, f.name)
		}
	}
	for _, f := range typeBFeatures {
		if hdr.TypeB&f.mask != 0 {
			hdr.Features = append(hdr.Features, f.name)
		}
	}

	hdr.Controller1 = controllerName(data[55])
	hdr.Controller2 = controllerName(data[56])

	if data[57]&0x01 == 0x01 {
		hdr.Video = "PAL"
	} else {
		hdr.Video = "NTSC"
	}

	return hdr, nil
}

func controllerName(v uint8) string {
	switch v {
	case 0:
		return "None"
	case 1:
		return "ProLine"
	case 2:
		return "Lightgun"
	}
	return fmt.Sprintf("unknown (%d)", v)
}

// Mapping returns the mapping scheme named by the header, or an error if
// the combination of features is not one the hardware can service.
func (hdr A78Header) Mapping() (string, error) {
	super := hdr.TypeB&0x02 == 0x02
	exram := hdr.TypeB&0x04 == 0x04
	exfix := hdr.TypeB&0x10 == 0x10
	abs := hdr.TypeA&0x02 == 0x02

	// features the responder has no hardware for
	for _, f := range hdr.Features {
		switch f {
		case "SUPER", "EXRAM", "EXFIX", "ABSOLUTE":
			// handled below
		default:
			return "", curated.Errorf("a78: unsupported cartridge feature (%s)", f)
		}
	}

	if abs {
		return "AB", nil
	}

	if super {
		// EXRAM and EXFIX both claim the 0x4000 region and cannot be
		// combined
		if exram && exfix {
			return "", curated.Errorf("a78: unsupported cartridge feature (%s)", "EXRAM with EXFIX")
		}
		if exram {
			return "SGER", nil
		}
		if exfix {
			return "SGEF", nil
		}
		return "SG", nil
	}
	if exram {
		return "", curated.Errorf("a78: unsupported cartridge feature (%s)", "EXRAM without SUPER")
	}
	if exfix {
		return "", curated.Errorf("a78: unsupported cartridge feature (%s)", "EXFIX without SUPER")
	}

	switch hdr.Size {
	case 8192, 16384, 32768, 49152:
		return "FLAT", nil
	}

	return "", curated.Errorf("a78: unsupported image size (%d)", hdr.Size)
}

func (hdr A78Header) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("Version: %d\n", hdr.Version))
	s.WriteString(fmt.Sprintf("Name: %s\n", hdr.Name))
	s.WriteString(fmt.Sprintf("Size: %d\n", hdr.Size))
	s.WriteString(fmt.Sprintf("Cartridge type: [%s]\n", strings.Join(hdr.Features, ", ")))
	s.WriteString(fmt.Sprintf("Controller 1: %s\n", hdr.Controller1))
	s.WriteString(fmt.Sprintf("Controller 2: %s\n", hdr.Controller2))
	s.WriteString(fmt.Sprintf("Video: %s", hdr.Video))
	return s.String()
}
