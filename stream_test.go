/*
 * stream_test.go, part of goesp.
 *
 * Copyright 2017 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package esp

import (
	"fmt"
	"io"
	"strings"
	"testing"
)

//Tests the documentation example end to end: the encoded stream of a
//one-particle system has exactly 6 lines, with the expected content.
func TestStreamExample(Te *testing.T) {
	fmt.Println("Stream example test!")
	eos, err := NewStream(newExampleSystem())
	if err != nil {
		Te.Fatal(err)
	}
	b, err := io.ReadAll(eos.Frame())
	if err != nil {
		Te.Fatal(err)
	}
	text := string(b)
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) != 6 {
		Te.Errorf("Encoded stream has %d lines, want 6:\n%s", len(lines), text)
	}
	want := []string{"2.5", "1", "[10 10 10]", "[1 2 3]", "[0 0 0]", "[0 0 0]"}
	for i, w := range want {
		if lines[i] != w {
			Te.Errorf("Line %d is %q, want %q", i, lines[i], w)
		}
	}
}

//The stream must reflect the simulation at the moment of each Frame call,
//not at construction time.
func TestStreamIsLive(Te *testing.T) {
	sys := newExampleSystem()
	eos, err := NewStream(sys)
	if err != nil {
		Te.Fatal(err)
	}
	before, err := io.ReadAll(eos.Frame())
	if err != nil {
		Te.Fatal(err)
	}
	sys.time = 3.5
	sys.parts[0].pos = [3]float64{4, 5, 6}
	after, err := io.ReadAll(eos.Frame())
	if err != nil {
		Te.Fatal(err)
	}
	if string(before) == string(after) {
		Te.Error("Frame did not re-read the simulation state")
	}
	if !strings.HasPrefix(string(after), "3.5\n") {
		Te.Errorf("New frame does not carry the new time:\n%s", string(after))
	}
	//The topology, on the other hand, stays frozen.
	if eos.Topology().Len() != 1 || eos.Topology().Atom(0).Name != "A0" {
		Te.Error("Topology changed after construction")
	}
}

//A one-shot stream can't be read twice.
func TestStreamIsOneShot(Te *testing.T) {
	eos, err := NewStream(newExampleSystem())
	if err != nil {
		Te.Fatal(err)
	}
	frame := eos.Frame()
	if _, err := io.ReadAll(frame); err != nil {
		Te.Fatal(err)
	}
	b, err := io.ReadAll(frame)
	if len(b) != 0 || err != nil {
		Te.Errorf("A consumed stream returned data again: %q, %v", string(b), err)
	}
}

func TestCompressedFrame(Te *testing.T) {
	fmt.Println("Compressed frame test!")
	eos, err := NewStream(newExampleSystem())
	if err != nil {
		Te.Fatal(err)
	}
	plain, err := ReadFrame(eos.Frame())
	if err != nil {
		Te.Fatal(err)
	}
	zs, err := eos.CompressedFrame()
	if err != nil {
		Te.Fatal(err)
	}
	if zs.Name() != CompressedStreamName {
		Te.Errorf("Compressed stream named %q", zs.Name())
	}
	packed, err := ReadFrame(zs)
	if err != nil {
		Te.Fatal(err)
	}
	if packed.Time != plain.Time || packed.Natoms != plain.Natoms {
		Te.Errorf("Compressed frame disagrees with the plain one: %v %v", packed, plain)
	}
	for i := 0; i < packed.Natoms; i++ {
		for j := 0; j < 3; j++ {
			if packed.Coords.At(i, j) != plain.Coords.At(i, j) {
				Te.Errorf("Coordinate %d,%d differs after compression", i, j)
			}
		}
	}
}

//The version guard must reject consumers older than MinToolkitVersion
//before anything else happens.
func TestVersionGuard(Te *testing.T) {
	old := DefaultOptions()
	old.ToolkitVersion = "0.15.9"
	_, err := NewStream(newExampleSystem(), old)
	if err == nil {
		Te.Fatal("An outdated consumer version was accepted")
	}
	if _, ok := err.(*VersionError); !ok {
		Te.Errorf("Want *VersionError, got %T: %v", err, err)
	}
	for _, v := range []string{"0.16", "0.16.2", "0.17-dev", "1.0"} {
		o := DefaultOptions()
		o.ToolkitVersion = v
		if _, err := NewStream(newExampleSystem(), o); err != nil {
			Te.Errorf("Version %s rejected: %v", v, err)
		}
	}
	if err := CheckVersion("0.9.9"); err == nil {
		Te.Error("CheckVersion accepted 0.9.9")
	}
	if err := CheckVersion("0.16.0"); err != nil {
		Te.Error("CheckVersion rejected 0.16.0")
	}
}
