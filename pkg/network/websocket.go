package network

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Michel-2503/Kopfrechnen/pkg/clients"
	"github.com/Michel-2503/Kopfrechnen/pkg/log"
	"github.com/Michel-2503/Kopfrechnen/pkg/messages"
	"nhooyr.io/websocket"
)

const (
	// DefaultWriteTimeout bounds a single frame write
	DefaultWriteTimeout = 5 * time.Second
)

// StreamServer pushes session snapshots to WebSocket subscribers.
type StreamServer struct {
	clientManager      *clients.ClientManager
	clientEventManager *clients.ClientEventManager
	originPatterns     []string
	writeTimeout       time.Duration
}

type NewStreamServerOptions struct {
	ClientManager      *clients.ClientManager
	ClientEventManager *clients.ClientEventManager
	// OriginPatterns lists the allowed browser origins; "*" allows all.
	OriginPatterns []string
	WriteTimeout   time.Duration
}

func NewStreamServer(opts NewStreamServerOptions) *StreamServer {
	writeTimeout := opts.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = DefaultWriteTimeout
	}
	return &StreamServer{
		clientManager:      opts.ClientManager,
		clientEventManager: opts.ClientEventManager,
		originPatterns:     opts.OriginPatterns,
		writeTimeout:       writeTimeout,
	}
}

func (s *StreamServer) acceptOptions() *websocket.AcceptOptions {
	for _, pattern := range s.originPatterns {
		if pattern == "*" {
			return &websocket.AcceptOptions{InsecureSkipVerify: true}
		}
	}
	return &websocket.AcceptOptions{OriginPatterns: s.originPatterns}
}

// InitialMessage builds the first message of a stream.
type InitialMessage func() (*messages.Message, error)

// ServeSession upgrades the request and streams the session's messages
// until the client goes away, the session is closed or ctx is done.
// initial runs once the client is subscribed, so no change published after
// the first snapshot was read can be missed. Its message is written first.
func (s *StreamServer) ServeSession(w http.ResponseWriter, r *http.Request, sessionID string, initial InitialMessage) {
	conn, err := websocket.Accept(w, r, s.acceptOptions())
	if err != nil {
		log.Error("Failed to upgrade to WebSocket: %v", err)
		return
	}
	defer conn.CloseNow()

	client, err := s.clientManager.AddClient(sessionID)
	if err != nil {
		log.Error("Failed to add client: %v", err)
		conn.Close(websocket.StatusTryAgainLater, "too many subscribers")
		return
	}
	log.Debug("Client %d subscribed to session %s from %s", client.ID, sessionID, r.RemoteAddr)
	s.trigger(clients.ClientEventConnected, client)

	ctx, cancel := context.WithCancel(r.Context())
	defer func() {
		cancel()
		s.clientManager.RemoveClient(client.ID)
		s.trigger(clients.ClientEventDisconnected, client)
	}()

	go s.readLoop(ctx, cancel, conn, client)

	if initial != nil {
		msg, err := initial()
		if err != nil {
			log.Error("Failed to build initial snapshot for client %d: %v", client.ID, err)
			conn.Close(websocket.StatusInternalError, "")
			return
		}
		if err := s.write(ctx, conn, msg); err != nil {
			log.Error("Failed to write initial snapshot to client %d: %v", client.ID, err)
			return
		}
	}

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusGoingAway, "")
			return
		case msg, ok := <-client.Send:
			if !ok {
				return
			}
			if err := s.write(ctx, conn, msg); err != nil {
				log.Error("Failed to write message to client %d: %v", client.ID, err)
				return
			}
			if msg.Type == messages.MessageTypeServerSessionClosed {
				conn.Close(websocket.StatusNormalClosure, "session closed")
				return
			}
		}
	}
}

// readLoop answers pings and cancels ctx once the connection is gone.
func (s *StreamServer) readLoop(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, client *clients.Client) {
	defer cancel()

	for {
		message, err := ReadMessageFromWS(ctx, conn)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				log.Trace("Connection closed for client %d", client.ID)
			default:
				if !errors.Is(err, context.Canceled) {
					log.Error("Error reading WebSocket message from client %d: %v", client.ID, err)
				}
			}
			return
		}

		switch message.Type {
		case messages.MessageTypeClientPing:
			// the payload is echoed so clients can measure round trips
			pong := &messages.Message{Type: messages.MessageTypeServerPong, SessionID: client.SessionID, Payload: message.Payload}
			if err := s.write(ctx, conn, pong); err != nil {
				log.Error("Failed to write pong to client %d: %v", client.ID, err)
				return
			}
		default:
			log.Warn("Unhandled message type from client %d: %s", client.ID, message.Type)
		}
	}
}

func (s *StreamServer) write(ctx context.Context, conn *websocket.Conn, msg *messages.Message) error {
	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()
	return WriteMessageToWS(ctx, conn, msg)
}

func (s *StreamServer) trigger(eventType clients.ClientEventType, client *clients.Client) {
	if s.clientEventManager == nil {
		return
	}
	s.clientEventManager.Trigger(clients.ClientEvent{
		Type:      eventType,
		ClientID:  client.ID,
		SessionID: client.SessionID,
	})
}

// WriteMessageToWS writes a Message to a WebSocket connection
func WriteMessageToWS(ctx context.Context, conn *websocket.Conn, msg *messages.Message) error {
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %v", err)
	}

	if err := conn.Write(ctx, websocket.MessageBinary, b); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %w", err)
	}

	return nil
}

// ReadMessageFromWS reads a Message from a WebSocket connection
func ReadMessageFromWS(ctx context.Context, conn *websocket.Conn) (*messages.Message, error) {
	_, message, err := conn.Read(ctx)
	if err != nil {
		return nil, err
	}

	msg, err := messages.DeserializeMessage(message)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %v", err)
	}

	return msg, nil
}
