/*
 * stream.go, part of goesp.
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
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Names given to the in-memory frame streams. The compressed variant carries
//the .zst suffix so readers can pick the right decompressor, the same way
//trajectory files do with their extensions.
const (
	StreamName           = "__.ESP"
	CompressedStreamName = "__.ESP.zst"
)

//NamedStream is a one-shot, in-memory stream of frame text with a name. It
//can be read exactly once, start to finish: there is no Seek, no rewind and
//no second pass. Once consumed it only returns io.EOF.
type NamedStream struct {
	name string
	r    io.Reader
}

//NewNamedStream gives a name to an arbitrary one-shot stream, so readers can
//recognize its format. Most users will get their streams from Frame or
//CompressedFrame instead.
func NewNamedStream(name string, r io.Reader) *NamedStream {
	return &NamedStream{name: name, r: r}
}

//Read reads from the stream. It implements io.Reader and nothing more.
func (N *NamedStream) Read(p []byte) (int, error) {
	return N.r.Read(p)
}

//Name returns the name of the stream.
func (N *NamedStream) Name() string {
	return N.name
}

//Stream couples a live simulation to the topology and frame readers. On
//creation it extracts and freezes the Topology; every call to Frame encodes
//the simulation state at that moment.
type Stream struct {
	system System
	top    *Topology
	opts   *Options
}

//NewStream creates a Stream over the given simulation. The Topology is
//extracted here, once, and does not change afterwards. It fails with a
//*VersionError, before reading any particle, if the configured consumer
//toolkit version predates MinToolkitVersion.
func NewStream(system System, opts ...*Options) (*Stream, error) {
	o := DefaultOptions()
	if len(opts) > 0 && opts[0] != nil {
		o = opts[0]
	}
	if err := CheckVersion(o.ToolkitVersion); err != nil {
		return nil, err
	}
	S := new(Stream)
	S.system = system
	S.opts = o
	S.top = ParseTopology(system, o)
	return S, nil
}

//Topology returns the topology extracted when the Stream was created.
func (S *Stream) Topology() *Topology {
	return S.top
}

//Frame returns the particles' coordinates, velocities and forces at the
//current time, as a one-shot stream in the format parsed by ReadFrame and
//Reader. The simulation is re-read on every call.
func (S *Stream) Frame() *NamedStream {
	return &NamedStream{name: StreamName, r: bytes.NewBufferString(S.encode())}
}

//CompressedFrame is Frame with the text zstd-compressed, for consumers that
//move frames around (or just hold many of them) and would rather pay the
//decompression.
func (S *Stream) CompressedFrame() (*NamedStream, error) {
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, StreamError{message: err.Error(), stream: CompressedStreamName, deco: []string{"CompressedFrame"}, critical: true}
	}
	if _, err := w.Write([]byte(S.encode())); err != nil {
		return nil, StreamError{message: err.Error(), stream: CompressedStreamName, deco: []string{"CompressedFrame"}, critical: true}
	}
	if err := w.Close(); err != nil {
		return nil, StreamError{message: err.Error(), stream: CompressedStreamName, deco: []string{"CompressedFrame"}, critical: true}
	}
	return &NamedStream{name: CompressedStreamName, r: &buf}, nil
}

//encode serializes the current simulation state into the fixed text layout:
//time, atom count, box edge lengths, then one line per particle for the
//positions, the velocities and the forces, in that order. The particle list
//is snapshotted once, so the three blocks share one iteration order.
func (S *Stream) encode() string {
	var b strings.Builder
	parts := S.system.Particles()
	fmt.Fprintf(&b, "%v\n", S.system.Time())
	fmt.Fprintf(&b, "%d\n", len(parts))
	fmt.Fprintf(&b, "%v\n", S.system.BoxL())
	for _, p := range parts {
		fmt.Fprintf(&b, "%v\n", p.Pos())
	}
	for _, p := range parts {
		fmt.Fprintf(&b, "%v\n", p.Vel())
	}
	for _, p := range parts {
		fmt.Fprintf(&b, "%v\n", p.Force())
	}
	return b.String()
}
