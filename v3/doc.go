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

/*Package v3 implements a set of 3D vectors as a matrix with 3 columns and
an arbitrary number of rows, backed by a gonum Dense matrix. Within the
package it is understood that a "vector" is a row vector, i.e. the cartesian
coordinates of a point in 3D space. Everything the esp package stores per
atom and per frame (positions, velocities, forces) is one of these.*/
package v3
