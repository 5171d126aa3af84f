package room

import (
	"errors"

	"chiptracker/internal/util"
	"chiptracker/pkg/playable"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const messagesPerSecond = 5
const messageBurst = 10

// ErrTooManyMessages is sent to a client that sends messages faster than they are accepted
var ErrTooManyMessages = errors.New("too many messages, slow down")

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	dealer  *Dealer
	name    string
	limiter *rate.Limiter
}

// NewClient returns a new client object
// A client without a name is given a random one.
func NewClient(conn *websocket.Conn, name string) *Client {
	if name == "" {
		name = util.GetRandomName()
	}

	return &Client{
		send:    make(chan interface{}, 256),
		Close:   make(chan string),
		Conn:    conn,
		name:    name,
		limiter: rate.NewLimiter(messagesPerSecond, messageBurst),
	}
}

// Send send a message to the web client
// It never blocks: false is returned if the client's buffer is full.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	return c.name
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	if !c.limiter.Allow() {
		c.Send(playable.ErrorResponse(msg.Context, ErrTooManyMessages))
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}
