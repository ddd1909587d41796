/*
 * interfaces.go, part of goesp.
 *
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
 *
 */

package esp

import v3 "github.com/rmera/goesp/v3"

/*The simulation side of the bridge. The engine itself is an external
 * collaborator: we only ever read from it, one particle iteration per frame,
 * and never mutate it. The iteration order of Particles() defines the atom
 * index for everything produced here, so it must be stable within one call.*/

// System is the live simulation handle. BoxL returns the edge lengths of the
// (orthorhombic) simulation box, Time the elapsed simulation time.
type System interface {
	Time() float64

	BoxL() [3]float64

	//Particles returns the current particles, in the iteration order
	//that defines the atom indexing of topologies and frames.
	Particles() []Particle
}

// Particle gives read access to the per-particle fields of the simulation.
type Particle interface {

	//Type returns the integer particle category of the simulation.
	Type() int

	Mass() float64

	//Charge returns the charge of the particle, in simulation units.
	Charge() float64

	Pos() [3]float64

	Vel() [3]float64

	Force() [3]float64
}

/*The consumer side. These are the same contracts used for file-based
 * trajectories, so a Reader over a live stream is interchangeable with any
 * other trajectory object.*/

// Traj is an interface for any trajectory object, including a Reader over a
// one-shot frame stream.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//reads the next frame and keeps it in output if output is not nil,
	//or discards it if it is. It can also fill the (optional) box with
	//the box vectors, if present in the frame.
	Next(output *v3.Matrix, box ...[]float64) error

	//Returns the number of atoms per frame
	Len() int
}

// Masser can return a slice with the masses of each atom in the reference.
type Masser interface {

	//Returns a column vector with the masses of all atoms
	Masses() ([]float64, error)
}

//Errors

// Error is the interface for errors that all types in this library implement.
// The Decorate method allows to add and retrieve info from the error, without
// changing its type or wrapping it around something else. If passed an empty
// string, Decorate should just return the current decoration slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

// TrajError is the interface for errors in trajectories and frame streams.
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors
// (i.e. the stream simply ran out of frames) so they can be filtered in a
// typeswitch that looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}
