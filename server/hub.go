// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"log"
	"sync/atomic"
	"time"

	"heightfield/server/terrain"
)

const statusPeriod = time.Second * 5

type (
	HubOptions struct {
		Field *terrain.HeightField
	}

	// Hub owns the height field and serializes all client queries onto
	// one goroutine.
	Hub struct {
		field   *terrain.HeightField
		clients ClientList

		// Served atomically by HTTP
		statusJSON atomic.Value

		// Inbound channels
		inbound    chan SignedInbound
		register   chan Client
		unregister chan Client

		statusTicker *time.Ticker
	}

	status struct {
		Clients int   `json:"clients"`
		Field   Field `json:"field"`
	}
)

func NewHub(options HubOptions) *Hub {
	if options.Field == nil {
		panic("hub requires a height field")
	}

	return &Hub{
		field:        options.Field,
		inbound:      make(chan SignedInbound, 64),
		register:     make(chan Client, 8),
		unregister:   make(chan Client, 16),
		statusTicker: time.NewTicker(statusPeriod),
	}
}

func (h *Hub) Run() {
	h.Status()

	for {
		select {
		case client := <-h.register:
			h.clients.Add(client)
			client.Data().Hub = h
			client.Init()
		case client := <-h.unregister:
			client.Close()
			client.Data().Hub = nil
			h.clients.Remove(client)
		case in := <-h.inbound:
			// Read all messages currently in the channel
			n := len(h.inbound)

			for {
				// If not same hub the message is old
				if h == in.Client.Data().Hub {
					in.Inbound(h, in.Client)
				}

				if n--; n <= 0 {
					break
				}

				in = <-h.inbound
			}
		case <-h.statusTicker.C:
			h.Status()
		}
	}
}

// Status snapshots the hub for the HTTP index.
func (h *Hub) Status() {
	buf, err := json.Marshal(status{
		Clients: h.clients.Len,
		Field:   fieldOutbound(h.field),
	})
	if err != nil {
		log.Println("status marshal error:", err)
		return
	}
	h.statusJSON.Store(buf)
}
