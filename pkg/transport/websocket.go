package transport

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/coreseekdev/inkweave/pkg/ot"
	"github.com/coreseekdev/inkweave/pkg/wire"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // demonstration relay, not a hardened deployment
	},
}

// Server hosts the websocket endpoint one document's collaborators
// connect to. Every decoded operation is handed to Handler and then
// broadcast verbatim to every other connected client.
type Server struct {
	addr    string
	mu      sync.RWMutex
	clients map[string]*clientConn
	closeCh chan struct{}
	server  *http.Server
	Handler OperationHandler
}

// clientConn is one connected collaborator.
type clientConn struct {
	id   string
	conn *websocket.Conn
	send chan ot.Operation
	hub  *Server
}

// NewServer creates a relay server listening at addr.
func NewServer(addr string) *Server {
	return &Server{
		addr:    addr,
		clients: make(map[string]*clientConn),
		closeCh: make(chan struct{}),
	}
}

// Start begins serving the websocket endpoint in the background.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)

	s.server = &http.Server{Addr: s.addr, Handler: mux}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[transport] server stopped: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		s.Close()
	}()

	return nil
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[transport] upgrade failed: %v", err)
		return
	}

	clientID := r.URL.Query().Get("client_id")
	if clientID == "" {
		clientID = uuid.NewString()
	}
	log.Printf("[transport] %s: connected from %s", clientID, r.RemoteAddr)

	c := &clientConn{
		id:   clientID,
		conn: conn,
		send: make(chan ot.Operation, 256),
		hub:  s,
	}

	s.mu.Lock()
	s.clients[clientID] = c
	s.mu.Unlock()

	go c.writePump()
	go c.readPump()
}

// readPump decodes every incoming wire message, hands it to the handler,
// then rebroadcasts it to the rest of the document's clients.
func (c *clientConn) readPump() {
	defer func() {
		log.Printf("[transport] %s: readPump closing", c.id)
		c.conn.Close()
		c.hub.mu.Lock()
		delete(c.hub.clients, c.id)
		c.hub.mu.Unlock()
		close(c.send)
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			log.Printf("[transport] %s: read error: %v", c.id, err)
			return
		}

		op, err := wire.UnmarshalOperation(raw)
		if err != nil {
			log.Printf("[transport] %s: malformed operation: %v", c.id, err)
			continue
		}

		if c.hub.Handler != nil {
			c.hub.Handler(c.id, op)
		}
		c.hub.broadcastExcept(c.id, op)
	}
}

func (c *clientConn) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		log.Printf("[transport] %s: writePump closing", c.id)
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case op, ok := <-c.send:
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			raw, err := wire.MarshalOperation(op)
			if err != nil {
				log.Printf("[transport] %s: encode error: %v", c.id, err)
				continue
			}
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				log.Printf("[transport] %s: write error: %v", c.id, err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.hub.closeCh:
			return
		}
	}
}

// broadcastExcept sends op to every connected client other than
// excludeID — the sender already has it.
func (s *Server) broadcastExcept(excludeID string, op ot.Operation) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id, c := range s.clients {
		if id == excludeID {
			continue
		}
		select {
		case c.send <- op:
		case <-s.closeCh:
			return
		}
	}
}

// Send delivers op to one specific client.
func (s *Server) Send(clientID string, op ot.Operation) error {
	select {
	case <-s.closeCh:
		return ErrTransportClosed
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clients[clientID]
	if !ok {
		return fmt.Errorf("transport: client not found: %s", clientID)
	}

	select {
	case c.send <- op:
		return nil
	case <-s.closeCh:
		return ErrTransportClosed
	}
}

// Close shuts down the server and every client connection.
func (s *Server) Close() error {
	select {
	case <-s.closeCh:
		return nil
	default:
		close(s.closeCh)
	}

	if s.server != nil {
		s.server.Close()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		close(c.send)
		c.conn.Close()
	}
	s.clients = make(map[string]*clientConn)
	return nil
}
