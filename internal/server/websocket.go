package server

import (
	"net/http"

	"github.com/gorilla/websocket"
)

type client struct {
	conn *websocket.Conn
}

// handleWebsocket registers a client and sends it the current state. Every
// later change is pushed by broadcast; incoming messages are ignored.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	s.log.Info("websocket connected", "remote", conn.RemoteAddr().String())
	c := &client{conn: conn}

	// Registering under mu means no change can slip in between the
	// snapshot and the first broadcast this client sees.
	s.mu.Lock()
	s.clientsLock.Lock()
	s.clients[c] = struct{}{}
	err = c.conn.WriteJSON(viewState(s.game))
	s.clientsLock.Unlock()
	s.mu.Unlock()
	if err != nil {
		s.drop(c)
		return
	}

	go func() {
		for {
			if _, _, err := c.conn.ReadMessage(); err != nil {
				s.log.Debug("websocket closed", "remote", c.conn.RemoteAddr().String(), "error", err)
				s.drop(c)
				return
			}
		}
	}()
}

// broadcast sends v to every client, dropping those that fail.
func (s *Server) broadcast(v StateView) {
	s.clientsLock.Lock()
	defer s.clientsLock.Unlock()
	for c := range s.clients {
		if err := c.conn.WriteJSON(v); err != nil {
			s.log.Debug("websocket write failed", "error", err)
			delete(s.clients, c)
			c.conn.Close()
		}
	}
}

func (s *Server) drop(c *client) {
	s.clientsLock.Lock()
	delete(s.clients, c)
	s.clientsLock.Unlock()
	c.conn.Close()
}

func (s *Server) closeClients() {
	s.clientsLock.Lock()
	defer s.clientsLock.Unlock()
	for c := range s.clients {
		c.conn.Close()
		delete(s.clients, c)
	}
}
