package ingress

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"math/big"
	"net"
	"net/http"
	"time"

	"coinrush/pkg/arena"
	"coinrush/pkg/protocol"

	"github.com/rs/zerolog/log"
	"github.com/sasha-s/go-deadlock"
	"nhooyr.io/websocket"
)

const (
	CLIENT_MESSAGE_LIMIT int = 16
)

type WSClient struct {
	id        uint32
	host      string
	send      chan []byte
	closeSlow func()
}

type WSIngress struct {
	server     *arena.Server
	clients    map[uint32]*WSClient
	mutex      deadlock.Mutex
	httpServer *http.Server
}

func NewWSIngress(server *arena.Server) *WSIngress {
	return &WSIngress{
		server:  server,
		clients: make(map[uint32]*WSClient),
	}
}

func WriteTimeout(ctx context.Context, timeout time.Duration, c *websocket.Conn, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return c.Write(ctx, websocket.MessageBinary, msg)
}

func (server *WSIngress) newSessionID() (uint32, error) {
	server.mutex.Lock()
	defer server.mutex.Unlock()

	for attempts := 0; attempts < math.MaxUint16; attempts++ {
		number, _ := rand.Int(rand.Reader, big.NewInt(math.MaxUint32))
		truncated := uint32(number.Uint64())

		if _, taken := server.clients[truncated]; taken {
			continue
		}

		return truncated, nil
	}

	return 0, errors.New("failed to assign session ID")
}

func (server *WSIngress) AddClient(s *WSClient) {
	server.mutex.Lock()
	server.clients[s.id] = s
	server.mutex.Unlock()
}

func (server *WSIngress) RemoveClient(client *WSClient) {
	server.mutex.Lock()
	delete(server.clients, client.id)
	server.mutex.Unlock()
}

func (server *WSIngress) FindClient(id uint32) *WSClient {
	server.mutex.Lock()
	defer server.mutex.Unlock()

	return server.clients[id]
}

func (server *WSIngress) HandleClient(ctx context.Context, c *websocket.Conn, host string) error {
	id, err := server.newSessionID()
	if err != nil {
		return err
	}

	if _, err := server.server.Connect(id); err != nil {
		return err
	}

	client := &WSClient{
		id:   id,
		host: host,
		send: make(chan []byte, CLIENT_MESSAGE_LIMIT),
		closeSlow: func() {
			c.Close(websocket.StatusPolicyViolation, "connection too slow to keep up with messages")
		},
	}

	server.AddClient(client)
	defer server.RemoveClient(client)

	// However the socket dies, the game has to see the disconnect.
	defer func() {
		select {
		case server.server.Incoming() <- arena.ServerPacket{
			Session:  id,
			Messages: []protocol.Message{protocol.DisconnectMessage{Op: protocol.DisconnectOp}},
		}:
		case <-server.server.Ctx().Done():
		}
	}()

	logger := log.With().Uint32("clientId", id).Str("host", host).Logger()

	logger.Info().Msg("client connected")

	receive := make(chan []byte)

	go func() {
		for {
			if ctx.Err() != nil {
				return
			}

			typ, message, _ := c.Read(ctx)
			if typ != websocket.MessageBinary {
				continue
			}
			receive <- message
		}
	}()

	for {
		select {
		case msg := <-receive:
			message, err := protocol.Decode(msg)
			if err != nil {
				logger.Debug().Err(err).Msg("discarding undecodable message")
				continue
			}

			server.server.Incoming() <- arena.ServerPacket{
				Session:  id,
				Messages: []protocol.Message{message},
			}
		case msg := <-client.send:
			err := WriteTimeout(ctx, time.Second*5, c, msg)
			if err != nil {
				logger.Error().Msg("client missed write timeout; disconnecting")
				return err
			}
		case <-ctx.Done():
			logger.Info().Msg("client left")
			return ctx.Err()
		}
	}
}

func (server *WSIngress) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})

	if err != nil {
		log.Error().Err(err).Msg("error accepting client connection")
		return
	}

	defer c.Close(websocket.StatusInternalError, "operational fault during relay")

	// We may be behind a reverse proxy, so check this first
	hostname := r.RemoteAddr

	original, ok := r.Header["X-Forwarded-For"]
	if ok {
		hostname = original[0]
	}

	err = server.HandleClient(r.Context(), c, hostname)
	if errors.Is(err, context.Canceled) {
		return
	}
	if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
		websocket.CloseStatus(err) == websocket.StatusGoingAway {
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to close client port")
		return
	}
}

// PollMessages routes outbound packets from the game to the right socket.
// Clients that cannot keep up with their send buffer are disconnected rather
// than allowed to stall everyone else.
func (server *WSIngress) PollMessages(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case packet := <-server.server.Outgoing():
			client := server.FindClient(packet.Session)
			if client == nil {
				continue
			}

			for _, message := range packet.Messages {
				data, err := protocol.Encode(message)
				if err != nil {
					log.Error().Err(err).Msgf("could not encode %T", message)
					continue
				}

				select {
				case client.send <- data:
				default:
					go client.closeSlow()
				}
			}
		}
	}
}

func (server *WSIngress) Serve(ctx context.Context, port int) error {
	listen, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%d", port))
	if err != nil {
		log.Error().Err(err).Msg("failed to bind WebSocket port")
		return err
	}

	log.Info().Msgf("listening on http://%v", listen.Addr())

	httpServer := &http.Server{
		Handler: server,
	}

	server.httpServer = httpServer

	go server.PollMessages(ctx)

	return httpServer.Serve(listen)
}

func (server *WSIngress) Shutdown(ctx context.Context) {
	server.httpServer.Shutdown(ctx)
}
