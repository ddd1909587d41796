/*
 * serve.go, part of goesp.
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

/*Package serve pushes the current state of a simulation stream to websocket
clients, so analysis running in another process (or another machine) can
consume live frames without any file in between. Only the current frame is
ever served: nothing is persisted and no multi-frame trajectory is built.*/
package serve

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	esp "github.com/rmera/goesp"
)

//Msg is the request/response envelope exchanged with clients.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

//topologyMsg is the JSON form of the topology attribute arrays.
type topologyMsg struct {
	Natoms   int       `json:"natoms"`
	Names    []string  `json:"names"`
	Ids      []int     `json:"ids"`
	Types    []string  `json:"types"`
	Masses   []float64 `json:"masses"`
	Charges  []float64 `json:"charges"`
	Resids   []int     `json:"resids"`
	Resnums  []int     `json:"resnums"`
	Segids   []string  `json:"segids"`
	Resnames []string  `json:"resnames"`
	AltLocs  []string  `json:"altlocs"`
	ICodes   []string  `json:"icodes"`
	Occ      []float64 `json:"occupancies"`
	Bfactors []float64 `json:"tempfactors"`
}

//Server answers "topology" and "frame" requests from websocket clients with
//the frozen topology and the current frame of its stream.
type Server struct {
	addr     string
	stream   *esp.Stream
	upgrader websocket.Upgrader
}

func NewServer(addr string, stream *esp.Stream) *Server {
	return &Server{
		addr:   addr,
		stream: stream,
	}
}

//serveWs handles websocket requests from one peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("goesp/serve: upgrade failed: ", err)
		return
	}
	defer conn.Close()
	for {
		var msg Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("goesp/serve: read: ", err)
			}
			return
		}
		reply, err := s.answer(msg)
		if err != nil {
			log.Warn("goesp/serve: ", err)
			reply = Msg{Type: "error", Content: err.Error()}
		}
		if err := conn.WriteJSON(&reply); err != nil {
			log.Warn("goesp/serve: write: ", err)
			return
		}
	}
}

func (s *Server) answer(msg Msg) (Msg, error) {
	switch msg.Type {
	case "topology":
		top := s.stream.Topology()
		masses, err := top.Masses()
		if err != nil {
			return Msg{}, err
		}
		data, err := json.Marshal(topologyMsg{
			Natoms:   top.Len(),
			Names:    top.Names(),
			Ids:      top.Ids(),
			Types:    top.Types(),
			Masses:   masses,
			Charges:  top.Charges(),
			Resids:   top.Resids(),
			Resnums:  top.Resnums(),
			Segids:   top.Segids(),
			Resnames: top.Resnames(),
			AltLocs:  top.AltLocs(),
			ICodes:   top.ICodes(),
			Occ:      top.Occupancies(),
			Bfactors: top.Bfactors(),
		})
		if err != nil {
			return Msg{}, err
		}
		return Msg{Type: "topology", Content: string(data)}, nil
	case "frame":
		//the frame is re-encoded on every request, so the client always
		//sees the simulation as it is now.
		b, err := io.ReadAll(s.stream.Frame())
		if err != nil {
			return Msg{}, err
		}
		return Msg{Type: "frame", Content: string(b)}, nil
	default:
		return Msg{Type: "error", Content: "unknown request type: " + msg.Type}, nil
	}
}

//Handler returns the http handler serving the websocket endpoint at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWs(w, r)
	})
	return mux
}

//Serve blocks listening on the server's address.
func (s *Server) Serve() error {
	return http.ListenAndServe(s.addr, s.Handler())
}
