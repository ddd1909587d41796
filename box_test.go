/*
 * box_test.go, part of goesp.
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
	"testing"

	"github.com/stretchr/testify/assert"
)

//An orthorhombic box must round-trip its lengths exactly, in both
//directions of the codec.
func TestUnitCellOrthorhombic(t *testing.T) {
	var cell UnitCell
	cell.SetLengths([3]float64{10, 15, 20})
	assert.Equal(t, 10.0, cell[0], "length slot 0")
	assert.Equal(t, 15.0, cell[1], "length slot 1")
	assert.Equal(t, 20.0, cell[2], "length slot 2")
	a, b, c, alpha, beta, gamma := cell.Dimensions()
	assert.Equal(t, 10.0, a, "length a")
	assert.Equal(t, 15.0, b, "length b")
	assert.Equal(t, 20.0, c, "length c")
	assert.InDelta(t, 90.0, alpha, 1e-3, "angle alpha")
	assert.InDelta(t, 90.0, beta, 1e-3, "angle beta")
	assert.InDelta(t, 90.0, gamma, 1e-3, "angle gamma")

	var back UnitCell
	back.SetDimensions(a, b, c, 90, 90, 90)
	assert.Equal(t, 10.0, back[0], "length a after round trip")
	assert.Equal(t, 15.0, back[1], "length b after round trip")
	for _, i := range []int{3, 4, 5, 6} {
		assert.Equal(t, 0.0, back[i], "off-diagonal slot")
	}
}

//The slot assignment of the three edge vectors is an external contract:
//x in [0 3 4], y in [5 1 6], z in [7 8 2].
func TestUnitCellSlotOrder(t *testing.T) {
	cell := UnitCell{1, 2, 3, 4, 5, 6, 7, 8, 9}
	x, y, z := cell.Vectors()
	assert.Equal(t, [3]float64{1, 4, 5}, x, "x vector")
	assert.Equal(t, [3]float64{6, 2, 7}, y, "y vector")
	assert.Equal(t, [3]float64{8, 9, 3}, z, "z vector")
}

//Decoding a triclinic cell to lengths and angles, then encoding those back,
//must reproduce the x and y vectors it started from.
func TestUnitCellTriclinic(t *testing.T) {
	const (
		wa, wb, wc            = 8.0, 9.0, 11.0
		walpha, wbeta, wgamma = 80.0, 100.0, 120.0
	)
	x, y, z := TriclinicVectors(wa, wb, wc, walpha, wbeta, wgamma)
	var cell UnitCell
	for i := 0; i < 3; i++ {
		cell[cellOrderX[i]] = x[i]
		cell[cellOrderY[i]] = y[i]
		cell[cellOrderZ[i]] = z[i]
	}
	a, b, c, alpha, beta, gamma := cell.Dimensions()
	assert.InDelta(t, wa, a, 1e-9, "length a")
	assert.InDelta(t, wb, b, 1e-9, "length b")
	assert.InDelta(t, wc, c, 1e-9, "length c")
	assert.InDelta(t, walpha, alpha, 1e-6, "angle alpha")
	assert.InDelta(t, wbeta, beta, 1e-6, "angle beta")
	assert.InDelta(t, wgamma, gamma, 1e-6, "angle gamma")

	var back UnitCell
	back.SetDimensions(a, b, c, alpha, beta, gamma)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, x[i], back[cellOrderX[i]], 1e-9, "x component")
		assert.InDelta(t, y[i], back[cellOrderY[i]], 1e-9, "y component")
	}
}

//The encode direction never writes the z vector: the slots stay as they
//were. This asymmetry is inherited from the original streaming format and
//is relied upon by its consumers, so a change here must be deliberate.
func TestUnitCellEncodeLeavesZ(t *testing.T) {
	var cell UnitCell
	cell.SetDimensions(8, 9, 11, 80, 100, 120)
	for _, i := range cellOrderZ {
		assert.Equal(t, 0.0, cell[i], "z slot %d", i)
	}
	//even pre-existing z content survives an encode untouched
	cell[7], cell[8], cell[2] = 0.5, 0.25, 4
	cell.SetDimensions(8, 9, 11, 80, 100, 120)
	assert.Equal(t, 0.5, cell[7])
	assert.Equal(t, 0.25, cell[8])
	assert.Equal(t, 4.0, cell[2])
}
