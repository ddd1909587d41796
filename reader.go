/*
 * reader.go, part of goesp.
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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	log "github.com/sirupsen/logrus"

	v3 "github.com/rmera/goesp/v3"
)

//Units are the units advertised alongside a decoded frame. The decoder does
//not convert anything: it only tells the consumer what the numbers mean.
type Units struct {
	Time     string
	Length   string
	Velocity string
}

//DefaultUnits returns the units of the ESP stream format: no time unit,
//lengths in nanometers, velocities in nanometers per picosecond.
func DefaultUnits() Units {
	return Units{Time: "", Length: "nm", Velocity: "nm/ps"}
}

//Frame is one decoded simulation snapshot: the time, the box and the
//positions, velocities and forces of every particle, in the iteration order
//of the simulation. Each Frame is freshly allocated and uniquely owned.
type Frame struct {
	Time   float64
	Natoms int
	Coords *v3.Matrix //nil when Natoms is 0
	Vel    *v3.Matrix
	Force  *v3.Matrix
	Cell   *UnitCell
}

//Matches returns a critical error if the Frame and the given Topology
//disagree on the atom count. Consumers are expected to fail on it rather
//than truncate or pad.
func (F *Frame) Matches(T *Topology) error {
	if F.Natoms != T.Len() {
		return StreamError{message: fmt.Sprintf("%s: %d atoms in frame, %d in topology", ShapeMismatch, F.Natoms, T.Len()), critical: true}
	}
	return nil
}

//ReadFrame consumes a one-shot ESP stream, start to finish, and reconstructs
//the Frame it encodes. The stream is read exactly once: first the line count
//is checked against the declared atom count, then the rows are parsed.
//Decoding is all-or-nothing; any malformed line or count mismatch returns a
//critical error with the offending line, and no partial Frame.
func ReadFrame(stream io.Reader) (*Frame, error) {
	name, r, closer, err := rawStream(stream)
	if err != nil {
		return nil, errDecorate(err, "ReadFrame")
	}
	if closer != nil {
		defer closer()
	}
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, StreamError{message: "can't read the stream: " + err.Error(), stream: name, deco: []string{"ReadFrame"}, critical: true}
	}
	if len(lines) < 3 {
		return nil, StreamError{message: fmt.Sprintf("%s: a frame has at least 3 header lines, got %d", WrongFormat, len(lines)), stream: name, deco: []string{"ReadFrame"}, critical: true}
	}
	time, natoms, cell, err := parseHeader(lines[0], lines[1], lines[2], name)
	if err != nil {
		return nil, errDecorate(err, "ReadFrame")
	}
	if len(lines) != 3+3*natoms {
		return nil, StreamError{message: fmt.Sprintf("%s: %d atoms declared, but the stream has %d data lines", WrongFormat, natoms, len(lines)-3), stream: name, deco: []string{"ReadFrame"}, critical: true}
	}
	F := &Frame{Time: time, Natoms: natoms, Cell: cell}
	if natoms > 0 {
		F.Coords = v3.Zeros(natoms)
		F.Vel = v3.Zeros(natoms)
		F.Force = v3.Zeros(natoms)
	}
	var temp [3]float64
	for i := 0; i < natoms; i++ {
		for j, m := range []*v3.Matrix{F.Coords, F.Vel, F.Force} {
			if err := parseVector(lines[3+j*natoms+i], &temp, name); err != nil {
				return nil, errDecorate(err, "ReadFrame")
			}
			for k, v := range temp {
				m.Set(i, k, v)
			}
		}
	}
	return F, nil
}

//Reader is a single-frame trajectory over a one-shot ESP stream. It
//implements the Traj contract, so analysis code written for file
//trajectories consumes live simulation frames unchanged. The header is read
//at construction; the single frame is delivered by the first Next, and every
//later Next returns a LastFrameError.
type Reader struct {
	h        *bufio.Reader
	closeit  func()
	name     string
	natoms   int
	time     float64
	cell     *UnitCell
	vel      *v3.Matrix
	force    *v3.Matrix
	readable bool
	done     bool
}

//NewReader opens a one-shot stream for reading and consumes its header, so
//Len, Time and Cell are available before the first Next. It fails with a
//*VersionError, before touching the stream, if the configured consumer
//toolkit version predates MinToolkitVersion.
func NewReader(stream *NamedStream, opts ...*Options) (*Reader, error) {
	o := DefaultOptions()
	if len(opts) > 0 && opts[0] != nil {
		o = opts[0]
	}
	if err := CheckVersion(o.ToolkitVersion); err != nil {
		return nil, err
	}
	R := new(Reader)
	R.natoms = -1 //just so we know if things don't work
	name, r, closer, err := rawStream(stream)
	if err != nil {
		return nil, errDecorate(err, "NewReader")
	}
	R.name = name
	R.closeit = closer
	R.h = bufio.NewReader(r)
	l0, err0 := readLine(R.h)
	l1, err1 := readLine(R.h)
	l2, err2 := readLine(R.h)
	if err0 != nil || err1 != nil || err2 != nil {
		return nil, StreamError{message: WrongFormat + ": stream ended within the 3 header lines", stream: R.name, deco: []string{"NewReader"}, critical: true}
	}
	R.time, R.natoms, R.cell, err = parseHeader(l0, l1, l2, R.name)
	if err != nil {
		return nil, errDecorate(err, "NewReader")
	}
	R.readable = true
	return R, nil
}

//Readable returns true if it is possible to call Next on the reader.
func (R *Reader) Readable() bool {
	return R.readable
}

//Len returns the number of atoms in the frame.
func (R *Reader) Len() int {
	return R.natoms
}

//Time returns the simulation time of the frame.
func (R *Reader) Time() float64 {
	return R.time
}

//Cell returns the unit cell of the frame. Only the edge lengths are known
//at this stage; the angles imply an orthorhombic box.
func (R *Reader) Cell() *UnitCell {
	return R.cell
}

//Units returns the units of the stream. No conversion is performed.
func (R *Reader) Units() Units {
	return DefaultUnits()
}

//Velocities returns the velocities read by Next, or nil if Next has not run
//(or the frame is empty).
func (R *Reader) Velocities() *v3.Matrix {
	return R.vel
}

//Forces returns the forces read by Next, or nil if Next has not run (or the
//frame is empty).
func (R *Reader) Forces() *v3.Matrix {
	return R.force
}

//Next puts in the given matrix the coordinates of the frame, and, if given,
//puts the 9-float unit cell in box. A nil matrix discards the coordinates
//while still validating the whole stream. The stream holds exactly one
//frame: the second call returns a LastFrameError, which signals normal
//termination, not an actual problem.
func (R *Reader) Next(c *v3.Matrix, box ...[]float64) error {
	if !R.readable {
		return StreamError{message: TrajUnIniRead, stream: R.name, deco: []string{"Next"}, critical: true}
	}
	if R.done {
		R.Close()
		return newlastFrameError(R.name, "Next")
	}
	if c != nil && R.natoms > 0 && c.NVecs() < R.natoms {
		return StreamError{message: fmt.Sprintf("%s: %d vectors given, %d needed", NotEnoughSpace, c.NVecs(), R.natoms), stream: R.name, deco: []string{"Next"}, critical: true}
	}
	if R.natoms > 0 {
		R.vel = v3.Zeros(R.natoms)
		R.force = v3.Zeros(R.natoms)
	}
	if err := readBlock(R.h, c, R.natoms, "position", R.name); err != nil {
		return errDecorate(err, "Next")
	}
	if err := readBlock(R.h, R.vel, R.natoms, "velocity", R.name); err != nil {
		return errDecorate(err, "Next")
	}
	if err := readBlock(R.h, R.force, R.natoms, "force", R.name); err != nil {
		return errDecorate(err, "Next")
	}
	if err := ensureExhausted(R.h, R.natoms, R.name); err != nil {
		return errDecorate(err, "Next")
	}
	R.done = true
	if len(box) > 0 {
		if len(box[0]) >= 9 {
			for i, v := range R.cell {
				box[0][i] = v
			}
		} else {
			log.Warnf("goesp: box slice for stream %s only holds %d values, 9 needed; box not returned", R.name, len(box[0]))
		}
	}
	return nil
}

//Close marks the reader as unreadable and releases the decompressor, if any.
func (R *Reader) Close() {
	if !R.readable {
		return
	}
	if R.closeit != nil {
		R.closeit()
	}
	R.readable = false
}

//rawStream unwraps a NamedStream, transparently decompressing the zstd
//variant, which is recognized by its name suffix the way trajectory files
//are recognized by their extension. The returned closer, if not nil, must be
//called once the stream is consumed.
func rawStream(stream io.Reader) (string, io.Reader, func(), error) {
	name := ""
	ns, ok := stream.(*NamedStream)
	if !ok {
		return name, stream, nil, nil
	}
	name = ns.Name()
	if !strings.HasSuffix(strings.ToLower(name), ".zst") {
		return name, ns, nil, nil
	}
	d, err := zstd.NewReader(ns)
	if err != nil {
		return name, nil, nil, StreamError{message: "can't open the compressed stream: " + err.Error(), stream: name, critical: true}
	}
	return name, d, d.Close, nil
}

//readLine returns the next line without its terminator. An EOF that still
//carried content is not an error; an EOF with nothing signals the true end.
func readLine(h *bufio.Reader) (string, error) {
	line, err := h.ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}

//vectorFields strips the wrapping brackets of the vector-printing convention
//and splits the rest into fields. Bare, unbracketed values pass through
//unchanged.
func vectorFields(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "[")
	line = strings.TrimSuffix(line, "]")
	return strings.Fields(line)
}

//parseHeader decodes the 3 header lines of a frame: the time, the atom
//count and the box edge lengths, which seed the unit cell through the
//length-only direction of the box codec.
func parseHeader(timeline, natline, boxline, name string) (time float64, natoms int, cell *UnitCell, err error) {
	fields := vectorFields(timeline)
	if len(fields) != 1 {
		return 0, 0, nil, StreamError{message: WrongFormat + ": the time line must hold exactly one value", stream: name, line: timeline, critical: true}
	}
	time, perr := strconv.ParseFloat(fields[0], 64)
	if perr != nil {
		return 0, 0, nil, StreamError{message: "can't parse the time: " + perr.Error(), stream: name, line: timeline, critical: true}
	}
	fields = vectorFields(natline)
	if len(fields) != 1 {
		return 0, 0, nil, StreamError{message: WrongFormat + ": the atom count line must hold exactly one value", stream: name, line: natline, critical: true}
	}
	natoms, perr = strconv.Atoi(fields[0])
	if perr != nil || natoms < 0 {
		return 0, 0, nil, StreamError{message: "can't parse the atom count", stream: name, line: natline, critical: true}
	}
	var box [3]float64
	if err := parseVector(boxline, &box, name); err != nil {
		return 0, 0, nil, errDecorate(err, "parseHeader")
	}
	cell = new(UnitCell)
	cell.SetLengths(box)
	return time, natoms, cell, nil
}

//parseVector decodes one data line into exactly 3 floats.
func parseVector(line string, out *[3]float64, name string) error {
	fields := vectorFields(line)
	if len(fields) < 3 {
		return StreamError{message: WrongFormat + ": too few fields in vector line", stream: name, line: line, critical: true}
	}
	if len(fields) > 3 {
		return StreamError{message: WrongFormat + ": too many fields in vector line", stream: name, line: line, critical: true}
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return StreamError{message: fmt.Sprintf("%s: can't parse value %d: %s", WrongFormat, i, err.Error()), stream: name, line: line, critical: true}
		}
		out[i] = v
	}
	return nil
}

//readBlock reads natoms vector lines into out, or discards them if out is
//nil, still checking every line for correctness.
func readBlock(h *bufio.Reader, out *v3.Matrix, natoms int, what, name string) error {
	var temp [3]float64
	for i := 0; i < natoms; i++ {
		line, err := readLine(h)
		if err != nil {
			return StreamError{message: fmt.Sprintf("%s: stream ended after %d %s lines, want %d", WrongFormat, i, what, natoms), stream: name, critical: true}
		}
		if err := parseVector(line, &temp, name); err != nil {
			return errDecorate(err, "readBlock: "+what)
		}
		if out == nil {
			continue
		}
		for j, v := range temp {
			out.Set(i, j, v)
		}
	}
	return nil
}

//ensureExhausted checks that the declared atom count was consistent with
//the stream: after the 3+3N expected lines nothing but the end may follow.
func ensureExhausted(h *bufio.Reader, natoms int, name string) error {
	line, err := readLine(h)
	if err != nil {
		return nil
	}
	return StreamError{message: fmt.Sprintf("%s: excess data after %d atoms", WrongFormat, natoms), stream: name, line: line, critical: true}
}
