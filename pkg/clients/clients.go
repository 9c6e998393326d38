package clients

import (
	"fmt"
	"sync"

	"github.com/Michel-2503/Kopfrechnen/pkg/messages"
)

const (
	// ClientIDMaxRetries represents the maximum number of retries when generating a unique ID
	ClientIDMaxRetries = 1024
	// ClientSendBufferSize is the number of messages buffered per client
	ClientSendBufferSize = 16
)

// Client is a subscriber to the snapshots of one session
type Client struct {
	ID        uint32
	SessionID string
	// Send receives the messages for the client. It is closed when the
	// client is removed.
	Send chan *messages.Message
}

// ClientManager manages the subscribers of all sessions
type ClientManager struct {
	clients     map[uint32]*Client
	clientsLock sync.RWMutex
	nextID      uint32
}

// NewClientManager creates a new ClientManager
func NewClientManager() *ClientManager {
	return &ClientManager{
		clients: make(map[uint32]*Client),
		nextID:  1,
	}
}

// GetClients returns the clients subscribed to a session
func (cm *ClientManager) GetClients(sessionID string) []*Client {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	clients := make([]*Client, 0)
	for _, client := range cm.clients {
		if client.SessionID == sessionID {
			clients = append(clients, client)
		}
	}
	return clients
}

// AddClient subscribes a new client to a session
func (cm *ClientManager) AddClient(sessionID string) (*Client, error) {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()
	clientID, err := cm.GenerateUniqueID(ClientIDMaxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate a unique ID: %v", err)
	}
	client := &Client{
		ID:        clientID,
		SessionID: sessionID,
		Send:      make(chan *messages.Message, ClientSendBufferSize),
	}
	cm.clients[clientID] = client
	return client, nil
}

// RemoveClient removes a client from the manager and closes its channel.
func (cm *ClientManager) RemoveClient(clientID uint32) {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()

	if client, exists := cm.clients[clientID]; exists {
		close(client.Send)
		delete(cm.clients, clientID)
	}
}

// GetClientByID retrieves a client by its ID
func (cm *ClientManager) GetClientByID(clientID uint32) *Client {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	return cm.clients[clientID]
}

func (cm *ClientManager) Exists(clientID uint32) bool {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	_, ok := cm.clients[clientID]
	return ok
}

// Broadcast queues a message for every client of the session. Clients whose
// buffer is full miss the message; the next snapshot supersedes it.
// It returns the number of clients that missed it.
func (cm *ClientManager) Broadcast(sessionID string, message *messages.Message) int {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()

	dropped := 0
	for _, client := range cm.clients {
		if client.SessionID != sessionID {
			continue
		}
		select {
		case client.Send <- message:
		default:
			dropped++
		}
	}
	return dropped
}

// GenerateUniqueID generates a unique client ID with a maximum number of retries
// it reads from the clients, so it needs to be locked before calling
func (cm *ClientManager) GenerateUniqueID(maxRetries int) (uint32, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		id := cm.nextID
		cm.nextID++
		if id == 0 {
			continue
		}
		if _, ok := cm.clients[id]; !ok {
			return id, nil
		}
	}

	return 0, fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}
