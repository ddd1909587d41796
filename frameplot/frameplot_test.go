/*
 * frameplot_test.go, part of goesp.
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

package frameplot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	esp "github.com/rmera/goesp"
)

func testFrame(Te *testing.T) *esp.Frame {
	stream := "2.5\n3\n[10 10 10]\n" +
		"[1 2 3]\n[4 5 6]\n[-1 0.5 2]\n" +
		"[0 0 0]\n[0 0 0]\n[0 0 0]\n" +
		"[1 0 0]\n[0 -2 0]\n[0 0 3]\n"
	F, err := esp.ReadFrame(strings.NewReader(stream))
	if err != nil {
		Te.Fatal(err)
	}
	return F
}

func TestXY(Te *testing.T) {
	F := testFrame(Te)
	name := filepath.Join(Te.TempDir(), "xy")
	if err := XY(F, 0, 1, "x against y", name); err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(name + ".png")
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("Empty plot file")
	}
	if err := XY(F, 0, 3, "bad component", name); err == nil {
		Te.Error("Component 3 was accepted")
	}
	if err := XY(nil, 0, 1, "no frame", name); err == nil {
		Te.Error("A nil frame was accepted")
	}
}

func TestForceNorms(Te *testing.T) {
	F := testFrame(Te)
	name := filepath.Join(Te.TempDir(), "forces")
	if err := ForceNorms(F, "force magnitudes", name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Fatal(err)
	}
	empty := &esp.Frame{}
	if err := ForceNorms(empty, "empty", name); err == nil {
		Te.Error("An empty frame was accepted")
	}
}
