/*
 * errors.go, part of goesp.
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

import "fmt"

//errDecorate is a helper function that asserts that the error implements
//the Error interface of this package and decorates it with the caller's name
//before returning it. If used with any other error it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//StreamError is the general structure for frame-stream errors. It fulfills
//the Error and TrajError interfaces. A StreamError is never returned for a
//partially-decoded frame: decoding is all-or-nothing per call.
type StreamError struct {
	message  string
	stream   string //the name of the stream that has problems, or an empty string if none.
	line     string //the offending line, if any.
	deco     []string
	critical bool
}

func (err StreamError) Error() string {
	if err.line != "" {
		return fmt.Sprintf("goesp stream %s error: %s (line: %q)", err.stream, err.message, err.line)
	}
	return fmt.Sprintf("goesp stream %s error: %s", err.stream, err.message)
}

//Decorate adds new information to the error.
func (E StreamError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the name of the stream to which the failing frame was associated
func (err StreamError) FileName() string { return err.stream }

//Format returns the format of the stream (always "esp") associated to the error
func (err StreamError) Format() string { return "esp" }

//Critical returns true if the error is critical, false otherwise
func (err StreamError) Critical() bool { return err.critical }

const (
	TrajUnIniRead  = "Traj object uninitialized to read"
	NilCoordinates = "Given nil coordinates"
	WrongFormat    = "Wrong format in the ESP stream or frame"
	ShapeMismatch  = "Frame and Topology atom counts differ"
	NotEnoughSpace = "Not enough space in passed blocks"
	EOF            = "EOF"
)

//VersionError is returned when the consumer toolkit predates the minimum
//version whose attribute schema this bridge produces. It is fatal: no
//parsing is attempted after it.
type VersionError struct {
	version string
	min     string
}

func (err *VersionError) Error() string {
	return fmt.Sprintf("goesp: consumer toolkit version should be >= %s, got %s", err.min, err.version)
}

//lastFrameError implements LastFrameError. It signals that the one frame of
//the stream has already been delivered, which is not an actual problem.
type lastFrameError struct {
	deco   []string
	stream string
}

//NormalLastFrameTermination does nothing
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.stream }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "esp" }

func (E lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(stream string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.stream = stream
	e.deco = []string{caller}
	return e
}
