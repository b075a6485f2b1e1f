package realtime

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/cwsat/crossword/internal/db"
)

// ProgressEvent is the message shape streamed over a job's websocket, per
// §6's event stream: encoding, solving, done, unsat, timeout, error.
type ProgressEvent struct {
	JobID      string      `json:"jobId"`
	Status     string      `json:"status"`
	Placements interface{} `json:"placements,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// JobRoom fans progress events for one job out to every client watching it.
type JobRoom struct {
	ID      string
	Clients map[*Client]bool
	cancel  context.CancelFunc
	mutex   sync.RWMutex
}

// Hub owns one JobRoom per actively-watched job and the Redis subscription
// feeding it, mirroring the teacher's register/unregister channel loop but
// keyed by job id instead of room code.
type Hub struct {
	db         *db.Database
	jobs       map[string]*JobRoom
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
}

func NewHub(database *db.Database) *Hub {
	return &Hub{
		db:         database,
		jobs:       make(map[string]*JobRoom),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) addClient(client *Client) {
	h.mutex.Lock()
	room, exists := h.jobs[client.JobID]
	if !exists {
		ctx, cancel := context.WithCancel(context.Background())
		room = &JobRoom{ID: client.JobID, Clients: make(map[*Client]bool), cancel: cancel}
		h.jobs[client.JobID] = room
		go h.relayProgress(ctx, room)
	}
	h.mutex.Unlock()

	room.mutex.Lock()
	room.Clients[client] = true
	room.mutex.Unlock()

	log.Printf("client watching job %s registered", client.JobID)
}

func (h *Hub) removeClient(client *Client) {
	h.mutex.RLock()
	room, exists := h.jobs[client.JobID]
	h.mutex.RUnlock()
	if !exists {
		return
	}

	room.mutex.Lock()
	if _, ok := room.Clients[client]; ok {
		delete(room.Clients, client)
		close(client.Send)
	}
	empty := len(room.Clients) == 0
	room.mutex.Unlock()

	if empty {
		room.cancel()
		h.mutex.Lock()
		delete(h.jobs, client.JobID)
		h.mutex.Unlock()
	}
}

// relayProgress subscribes to the job's Redis progress channel and
// broadcasts each status change to every connected client until the job
// room empties and ctx is cancelled.
func (h *Hub) relayProgress(ctx context.Context, room *JobRoom) {
	sub := h.db.SubscribeJobProgress(ctx, room.ID)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			event := ProgressEvent{JobID: room.ID, Status: msg.Payload}
			if msg.Payload == "done" || msg.Payload == "unsat" || msg.Payload == "timeout" || msg.Payload == "error" {
				if job, err := h.db.GetJob(room.ID); err == nil && job != nil {
					event.Placements = job.Placements
					event.Error = job.Error
				}
			}
			h.broadcast(room, event)
		}
	}
}

func (h *Hub) broadcast(room *JobRoom, event ProgressEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	room.mutex.RLock()
	defer room.mutex.RUnlock()
	for client := range room.Clients {
		select {
		case client.Send <- data:
		default:
		}
	}
}
