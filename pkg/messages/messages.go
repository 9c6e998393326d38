package messages

// MessageType identifies the payload of a Message
type MessageType byte

// Message types
const (
	MessageTypeClientPing MessageType = iota + 1
	MessageTypeServerPong
	MessageTypeServerSnapshot
	MessageTypeServerSessionClosed
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeClientPing:
		return "ping"
	case MessageTypeServerPong:
		return "pong"
	case MessageTypeServerSnapshot:
		return "snapshot"
	case MessageTypeServerSessionClosed:
		return "session-closed"
	default:
		return "unknown"
	}
}

// Message is the envelope of every frame on the events stream
type Message struct {
	Type      MessageType
	SessionID string
	Payload   []byte
}
