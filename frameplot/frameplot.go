/*
 * frameplot.go, part of goesp.
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

/*Package frameplot draws quick diagnostic plots from a decoded frame: a
scatter of two coordinate components and the per-atom force magnitudes.
They are meant for eyeballing a running simulation, not for publication.*/
package frameplot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	esp "github.com/rmera/goesp"
)

var axisNames = [3]string{"x", "y", "z"}

//XY saves a scatter plot of the i-th against the j-th coordinate component
//of every atom in the frame, as a PNG in filename (the extension is added
//here). i and j are 0 for x, 1 for y and 2 for z.
func XY(frame *esp.Frame, i, j int, title, filename string) error {
	if frame == nil || frame.Natoms == 0 {
		return fmt.Errorf("goesp/frameplot: nothing to plot")
	}
	if i < 0 || i > 2 || j < 0 || j > 2 {
		return fmt.Errorf("goesp/frameplot: coordinate components must be 0, 1 or 2")
	}
	pts := make(plotter.XYs, frame.Natoms)
	for k := range pts {
		pts[k].X = frame.Coords.At(k, i)
		pts[k].Y = frame.Coords.At(k, j)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = axisNames[i] + " (nm)"
	p.Y.Label.Text = axisNames[j] + " (nm)"
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	p.Add(s)
	return p.Save(15*vg.Centimeter, 15*vg.Centimeter, filename+".png")
}

//ForceNorms saves a plot of the force magnitude on each atom against the
//atom index, as a PNG in filename (the extension is added here).
func ForceNorms(frame *esp.Frame, title, filename string) error {
	if frame == nil || frame.Natoms == 0 {
		return fmt.Errorf("goesp/frameplot: nothing to plot")
	}
	pts := make(plotter.XYs, frame.Natoms)
	for k := range pts {
		var n float64
		for c := 0; c < 3; c++ {
			f := frame.Force.At(k, c)
			n += f * f
		}
		pts[k].X = float64(k)
		pts[k].Y = math.Sqrt(n)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "atom index"
	p.Y.Label.Text = "|F|"
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(l)
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, filename+".png")
}
