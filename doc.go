/*
 * doc.go, part of goesp.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package esp exposes the coordinates and particle attributes of a running
ESPResSo-style simulation to trajectory analysis, without the need to save
information to files.

The main type is Stream, which couples a live simulation (anything satisfying
the System interface) to two consumers: a static Topology, extracted once when
the Stream is created, and a per-call frame stream with the positions,
velocities and forces of every particle at the moment of the call. The frame
stream is plain text, one value or vector per line, and is meant to be read
exactly once, start to finish, by ReadFrame or by a Reader.

A minimal working example:

	eos, err := esp.NewStream(system)
	if err != nil {
		//...
	}
	top := eos.Topology()
	traj, err := esp.NewReader(eos.Frame())
	if err != nil {
		//...
	}
	coords := v3.Zeros(traj.Len())
	box := make([]float64, 9)
	err = traj.Next(coords, box)

Each call to eos.Frame() re-reads the simulation, so the stream always
reflects the current state, while top keeps the attributes frozen at
construction time. The Reader implements the same Traj contract used for file
trajectories, so analysis loops written against that interface work on live
simulation data unchanged.
*/
package esp
