package network

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Michel-2503/Kopfrechnen/pkg/log"
	"github.com/Michel-2503/Kopfrechnen/pkg/messages"
	"nhooyr.io/websocket"
)

// maxRecentRTTs is the number of round trips kept for the RTT estimate
const maxRecentRTTs = 10

// StreamClient subscribes to the events stream of one session.
type StreamClient struct {
	url       string
	token     string
	snapshots chan<- *messages.SessionView
	conn      *websocket.Conn

	rttLock    sync.Mutex
	recentRTTs []int64
}

type NewStreamClientOptions struct {
	// URL is the ws:// or wss:// address of the session's events endpoint
	URL string
	// Token is sent as a bearer token when set
	Token string
	// Snapshots receives every snapshot pushed by the server
	Snapshots chan<- *messages.SessionView
}

func NewStreamClient(opts NewStreamClientOptions) *StreamClient {
	return &StreamClient{
		url:       opts.URL,
		token:     opts.Token,
		snapshots: opts.Snapshots,
	}
}

// Connect dials the events endpoint.
func (c *StreamClient) Connect(ctx context.Context) error {
	log.Info("Connecting to events stream at %s", c.url)
	dialOpts := &websocket.DialOptions{}
	if c.token != "" {
		dialOpts.HTTPHeader = http.Header{"Authorization": []string{"Bearer " + c.token}}
	}
	conn, _, err := websocket.Dial(ctx, c.url, dialOpts)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %v", err)
	}
	c.conn = conn
	return nil
}

// HandleMessages reads from the stream until the session is closed, the
// server goes away or ctx is done. A closed session returns nil.
func (c *StreamClient) HandleMessages(ctx context.Context) error {
	defer c.conn.CloseNow()
	for {
		msg, err := ReadMessageFromWS(ctx, c.conn)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				log.Trace("Events stream closed by server")
				return nil
			}
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		if err := c.handleMessage(ctx, msg); err != nil {
			log.Error("Failed to handle message: %v", err)
		}
		if msg.Type == messages.MessageTypeServerSessionClosed {
			c.conn.Close(websocket.StatusNormalClosure, "")
			return nil
		}
	}
}

func (c *StreamClient) handleMessage(ctx context.Context, msg *messages.Message) error {
	log.Trace("Received message of type %s", msg.Type)

	switch msg.Type {
	case messages.MessageTypeServerSnapshot:
		view, err := messages.DeserializeSnapshot(msg.Payload)
		if err != nil {
			return fmt.Errorf("failed to deserialize snapshot: %v", err)
		}
		select {
		case c.snapshots <- view:
		case <-ctx.Done():
		}
	case messages.MessageTypeServerPong:
		if len(msg.Payload) != 8 {
			return fmt.Errorf("unexpected pong payload of %d bytes", len(msg.Payload))
		}
		sentAt := int64(binary.BigEndian.Uint64(msg.Payload))
		c.recordRTT(time.Now().UnixMilli() - sentAt)
	case messages.MessageTypeServerSessionClosed:
		log.Info("Session %s was closed by the server", msg.SessionID)
	default:
		return fmt.Errorf("received unexpected message type: %s", msg.Type)
	}
	return nil
}

// Ping sends a ping stamped with the current time.
func (c *StreamClient) Ping(ctx context.Context) error {
	payload := make([]byte, 8)
	binary.BigEndian.PutUint64(payload, uint64(time.Now().UnixMilli()))
	return WriteMessageToWS(ctx, c.conn, &messages.Message{
		Type:    messages.MessageTypeClientPing,
		Payload: payload,
	})
}

func (c *StreamClient) recordRTT(rtt int64) {
	c.rttLock.Lock()
	defer c.rttLock.Unlock()
	c.recentRTTs = append(c.recentRTTs, rtt)
	if len(c.recentRTTs) > maxRecentRTTs {
		c.recentRTTs = c.recentRTTs[len(c.recentRTTs)-maxRecentRTTs:]
	}
}

// RTT returns the mean of the recent round trips in milliseconds, outliers excluded.
func (c *StreamClient) RTT() int64 {
	c.rttLock.Lock()
	defer c.rttLock.Unlock()
	rtts := removeOutlierRTTs(c.recentRTTs)
	if len(rtts) == 0 {
		return 0
	}
	var sum int64
	for _, rtt := range rtts {
		sum += rtt
	}
	return sum / int64(len(rtts))
}

// Close closes the connection.
func (c *StreamClient) Close() error {
	if c.conn == nil {
		log.Warn("Events stream connection is already closed")
		return nil
	}
	return c.conn.Close(websocket.StatusNormalClosure, "")
}
