/*
 * topology.go, part of goesp.
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

	"github.com/skelterjohn/go.matrix"
)

//Atom contains the static metadata of one particle, as exposed to the
//analysis toolkit. The coordinates, velocities and forces are not here: they
//change in time and belong to the Frame.
type Atom struct {
	Name      string  //"A" plus the particle type id
	Id        int     //1-based, sequential in simulation iteration order
	Type      string  //"T" plus the particle type id
	Mass      float64
	Charge    float64
	Occupancy float64
	Bfactor   float64
	AltLoc    string
}

//Topology contains the static, per-atom metadata of a simulation: everything
//the analysis toolkit expects that is not expected to change in time. It is
//built once, when a Stream is created, and never reflects later particle
//additions or removals.
type Topology struct {
	atoms   []*Atom
	segid   string
	resname string
	icode   string
}

//ParseTopology reads the particle metadata of the given system and returns
//the corresponding Topology. It is a pure function of the particle state at
//call time: no references into the system are kept. A system with zero
//particles yields a valid Topology with all per-atom arrays of length 0.
func ParseTopology(system System, opts ...*Options) *Topology {
	o := DefaultOptions()
	if len(opts) > 0 && opts[0] != nil {
		o = opts[0]
	}
	parts := system.Particles()
	T := new(Topology)
	T.atoms = make([]*Atom, 0, len(parts))
	T.segid = o.Segid
	T.resname = o.Resname
	T.icode = " "
	for i, p := range parts {
		at := new(Atom)
		at.Name = fmt.Sprintf("%s%d", o.NamePrefix, p.Type())
		at.Type = fmt.Sprintf("%s%d", o.TypePrefix, p.Type())
		at.Mass = p.Mass()
		at.Charge = p.Charge()
		at.Id = i + 1
		at.AltLoc = " "
		T.atoms = append(T.atoms, at)
	}
	return T
}

/*Topology methods*/

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.atoms)
}

//Atom returns the Atom corresponding to the index i of the Atom slice in the
//Topology. Panics if out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.atoms[i]
}

//Names returns the per-atom names, in atom order.
func (T *Topology) Names() []string {
	ret := make([]string, T.Len())
	for i, at := range T.atoms {
		ret[i] = at.Name
	}
	return ret
}

//Ids returns the per-atom ids. Ids are 1-based and sequential.
func (T *Topology) Ids() []int {
	ret := make([]int, T.Len())
	for i, at := range T.atoms {
		ret[i] = at.Id
	}
	return ret
}

//Types returns the per-atom type labels, in atom order.
func (T *Topology) Types() []string {
	ret := make([]string, T.Len())
	for i, at := range T.atoms {
		ret[i] = at.Type
	}
	return ret
}

//Masses returns a slice with the mass of each atom, copied verbatim from the
//simulation at parse time. It implements the Masser interface.
func (T *Topology) Masses() ([]float64, error) {
	ret := make([]float64, T.Len())
	for i, at := range T.atoms {
		ret[i] = at.Mass
	}
	return ret, nil
}

//Charges returns the per-atom charges, in atom order.
func (T *Topology) Charges() []float64 {
	ret := make([]float64, T.Len())
	for i, at := range T.atoms {
		ret[i] = at.Charge
	}
	return ret
}

//Occupancies returns the per-atom occupancies. The simulation has no such
//concept, so they are all zero; the array is still atom-count long, as the
//consumer schema demands.
func (T *Topology) Occupancies() []float64 {
	return make([]float64, T.Len())
}

//Bfactors returns the per-atom temperature factors, all zero (see
//Occupancies).
func (T *Topology) Bfactors() []float64 {
	return make([]float64, T.Len())
}

//AltLocs returns the per-atom alternate-location codes, all blank.
func (T *Topology) AltLocs() []string {
	ret := make([]string, T.Len())
	for i := range ret {
		ret[i] = " "
	}
	return ret
}

//The whole simulation is presented as a single residue in a single segment,
//so the residue- and segment-level attributes have one element each.

//Resids returns the residue ids of the system.
func (T *Topology) Resids() []int {
	return []int{1}
}

//Resnums returns the residue numbers of the system.
func (T *Topology) Resnums() []int {
	return []int{1}
}

//Segids returns the segment identifiers of the system.
func (T *Topology) Segids() []string {
	return []string{T.segid}
}

//Resnames returns the residue names of the system.
func (T *Topology) Resnames() []string {
	return []string{T.resname}
}

//ICodes returns the insertion codes of the system.
func (T *Topology) ICodes() []string {
	return []string{T.icode}
}

//MassCol returns a 1-col DenseMatrix with the masses of the atoms, and an
//error if any mass has not been obtained. The go.matrix return type is kept
//for compatibility with older consumers.
func (T *Topology) MassCol() (*matrix.DenseMatrix, error) {
	mass, _ := T.Masses()
	for i, m := range mass {
		if m == 0 {
			return nil, fmt.Errorf("Not all the masses have been obtained: %d %v", i, T.Atom(i))
		}
	}
	massmat := matrix.MakeDenseMatrix(mass, len(mass), 1)
	return massmat, nil
}
