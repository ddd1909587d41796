/*
 * sim_test.go, part of goesp.
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

//A toy simulation, enough to feed the bridge in tests.

type mockParticle struct {
	typ          int
	mass, charge float64
	pos          [3]float64
	vel          [3]float64
	force        [3]float64
}

func (P *mockParticle) Type() int          { return P.typ }
func (P *mockParticle) Mass() float64      { return P.mass }
func (P *mockParticle) Charge() float64    { return P.charge }
func (P *mockParticle) Pos() [3]float64    { return P.pos }
func (P *mockParticle) Vel() [3]float64    { return P.vel }
func (P *mockParticle) Force() [3]float64  { return P.force }

type mockSystem struct {
	time  float64
	box   [3]float64
	parts []*mockParticle
}

func (M *mockSystem) Time() float64    { return M.time }
func (M *mockSystem) BoxL() [3]float64 { return M.box }

func (M *mockSystem) Particles() []Particle {
	ret := make([]Particle, len(M.parts))
	for i, p := range M.parts {
		ret[i] = p
	}
	return ret
}

//newExampleSystem is the system of the documentation example: one particle
//of type 0 at (1,2,3), at time 2.5, in a cubic box of side 10.
func newExampleSystem() *mockSystem {
	return &mockSystem{
		time: 2.5,
		box:  [3]float64{10, 10, 10},
		parts: []*mockParticle{
			{typ: 0, mass: 1.0, charge: -1.0, pos: [3]float64{1, 2, 3}},
		},
	}
}
