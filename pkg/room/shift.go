package room

import (
	"sort"
	"time"

	"chiptracker/pkg/playable"
)

// StartShift starts the run loop that keeps clients updated
// Every tickable is ticked on its own schedule until EndShift is called.
func (d *Dealer) StartShift(tickables ...playable.Tickable) {
	go d.runLoop()

	for _, t := range tickables {
		go d.tickLoop(t)
	}
}

// EndShift is called when the dealer is no longer needed
// It is safe to call more than once.
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)
	})
}

func (d *Dealer) runLoop() {
	d.log.Debug("creating dealer run loop")
	for {
		select {
		case e := <-d.stateChanged:
			switch e {
			case eventClients:
				d.sendClientState()
			case eventTable:
				d.sendTableState()
			}
		case <-d.close:
			d.log.Debug("terminating dealer run loop")
			return
		}
	}
}

func (d *Dealer) tickLoop(t playable.Tickable) {
	for {
		timer := time.NewTimer(t.Delay())
		select {
		case <-timer.C:
			updated, err := t.Tick()
			if err != nil {
				d.log.WithError(err).Error("could not tick")
			} else if updated {
				d.log.Debug("tick changed the table")
			}
		case <-d.close:
			timer.Stop()
			return
		}
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.clientsLock.RLock()
	defer d.clientsLock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// AddClient adds a client and sends it the current state
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.clientsLock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.clientsLock.Unlock()

	client.Send(d.GetState())
	d.notify(eventClients)
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.clientsLock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.clientsLock.Unlock()

	if nClients > 0 {
		d.notify(eventClients)
		return false
	}

	return true
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendTableState() {
	res := d.GetState()
	for _, client := range d.Clients() {
		if !client.Send(res) {
			d.log.WithField("client", client.String()).Warn("client is not keeping up, skipped state update")
		}
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendClientState() {
	clients := d.Clients()

	names := make([]string, len(clients))
	for i, client := range clients {
		names[i] = client.String()
	}
	sort.Strings(names)

	res := &playable.Response{
		Key:  "clientState",
		Data: names,
	}

	for _, client := range clients {
		client.Send(res)
	}
}
