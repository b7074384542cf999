package client

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/kf7mix/aprsgo"
)

// Defaults for the APRS-IS connection
const (
	DefaultHost   = "rotate.aprs.net"
	DefaultPort   = 14580
	DefaultFilter = "t/poimqstunw"
)

// Handler receives everything the read loop produces. Packets come with a
// running sequence number; lines the server prefixes with "# " arrive as
// comments. Disconnected fires once when the read loop ends.
type Handler interface {
	GotPacket(packet string, sequence int)
	GotComment(comment string)
	Disconnected(reason error)
}

// Client is an APRS-IS connection. Received lines are delivered to the
// Handler synchronously from a single read loop.
type Client struct {
	user     string
	passcode string
	filter   string
	host     string
	port     int
	software string
	version  string
	uptime   time.Time
	up       bool
	logger   aprsgo.Logger
	handler  Handler
	server   string

	conn net.Conn

	mu     sync.Mutex
	done   chan struct{}
	closed bool
}

// Export data

func (c *Client) User() string {
	return c.user
}

func (c *Client) Filter() string {
	return c.filter
}

func (c *Client) Host() string {
	return c.host
}

func (c *Client) Port() int {
	return c.port
}

func (c *Client) Uptime() time.Time {
	return c.uptime
}

func (c *Client) Up() bool {
	return c.up
}

func (c *Client) Server() string {
	return c.server
}

// Option provides a basic option type
type Option func(*Client)

// WithLogger sets default logger to custom
func WithLogger(logger aprsgo.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithFilter sets a filter to the client
func WithFilter(filter string) Option {
	return func(c *Client) {
		c.filter = filter
	}
}

// WithSoftwareAndVersion sets default software name and version to custom
func WithSoftwareAndVersion(software string, version string) Option {
	return func(c *Client) {
		c.software = software
		c.version = version
	}
}

// WithHost sets the server to connect to
func WithHost(host string, port int) Option {
	return func(c *Client) {
		c.host = host
		c.port = port
	}
}

// NewClient creates a new APRS-IS client delivering to the given handler
func NewClient(user string, passcode string, handler Handler, options ...Option) *Client {
	c := &Client{
		user:     user,
		passcode: passcode,
		filter:   DefaultFilter,
		host:     DefaultHost,
		port:     DefaultPort,
		software: aprsgo.Name,
		version:  aprsgo.Version,
		handler:  handler,
		done:     make(chan struct{}),
	}

	// Check user
	if user == "" {
		c.user = "N0CALL"
	}

	// Load default logger
	c.logger = aprsgo.NewLogger()

	// Apply options
	for _, option := range options {
		option(c)
	}

	return c
}

// Connect opens the TCP connection, performs the login handshake and starts
// the read loop. It returns once the server has verified the login.
func (c *Client) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Check client closed
	if c.closed {
		return errors.New("client is closed")
	}

	address := net.JoinHostPort(c.host, strconv.Itoa(c.port))

	conn, err := net.Dial("tcp", address)
	if err != nil {
		return err
	}

	c.conn = conn
	c.up = true
	c.uptime = time.Now()
	c.logger.Info(nil, "Connected to ", address)

	reader := bufio.NewReader(conn)

	if err := c.login(reader); err != nil {
		c.up = false
		_ = conn.Close()
		c.conn = nil
		return err
	}

	go c.receiveLines(reader)

	return nil
}

// login sends the login line and checks the banner and login response
func (c *Client) login(reader *bufio.Reader) error {
	loginStr := fmt.Sprintf("user %s pass %s %s %s filter %s\r\n",
		c.user, c.passcode, c.software, c.version, c.filter)

	if _, err := c.conn.Write([]byte(loginStr)); err != nil {
		c.logger.Error(nil, "Error writing login command to ", c.conn.RemoteAddr().String(), err)
		return err
	}

	// Banner
	banner, err := c.readLine(reader)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(banner, "# ") {
		return fmt.Errorf("unexpected banner line %q", banner)
	}
	c.server = strings.TrimPrefix(banner, "# ")

	// Login response
	resp, err := c.readLine(reader)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(resp, "# logresp "+c.user+" verified") {
		return fmt.Errorf("login failed: %q", resp)
	}

	// Check passcode
	if strconv.Itoa(aprsgo.Passcode(c.user)) == c.passcode {
		c.logger.Info(nil, "Logged in as ", c.user)
	}

	return nil
}

func (c *Client) readLine(reader *bufio.Reader) (string, error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(30 * time.Second)); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// receiveLines reads line-delimited frames and delivers them to the handler
func (c *Client) receiveLines(reader *bufio.Reader) {
	var reason error
	sequence := 0

root:
	for {
		select {
		case <-c.done:
			reason = errors.New("client closed")
			break root
		default:
			// Set timeout
			err := c.conn.SetReadDeadline(time.Now().Add(30 * time.Second))
			if err != nil {
				c.logger.Error(nil, "Error setting read deadline (timeout) ", err)
				reason = err
				break root
			}

			line, err := reader.ReadString('\n')
			if err != nil {
				var netErr net.Error
				if errors.As(err, &netErr) && netErr.Timeout() {
					// Timeout, retry
					continue
				}
				if err.Error() == "EOF" {
					c.logger.Warn(nil, "Server closed the connection")
				} else {
					c.logger.Error(nil, "Error reading from server ", err)
				}
				reason = err
				break root
			}

			line = strings.TrimRight(line, "\r\n")
			if line == "" {
				continue
			}

			if strings.HasPrefix(line, "# ") {
				c.handler.GotComment(strings.TrimPrefix(line, "# "))
				continue
			}

			c.handler.GotPacket(line, sequence)
			sequence++
		}
	}

	c.mu.Lock()
	c.up = false
	c.mu.Unlock()

	if c.handler != nil {
		c.handler.Disconnected(reason)
	}
}

// SendPacket sends an APRS packet
func (c *Client) SendPacket(packet string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.closed {
		return errors.New("client is closed or not connected")
	}

	fullPacket := packet + "\r\n"
	_, err := c.conn.Write([]byte(fullPacket))
	if err != nil {
		c.logger.Error(nil, "Error send packet: ", err)
		return err
	}

	c.logger.Debug(nil, "Sent packet: ", packet)
	return nil
}

// Close a client
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.closed = true
	close(c.done)

	if c.conn != nil {
		err := c.conn.Close()
		if err != nil {
			c.logger.Error(nil, "Error closing connection ", err)
		} else {
			c.logger.Info(nil, "client closed")
		}
		c.conn = nil
	}
}

// Wait the client exit
func (c *Client) Wait() {
	<-c.done
}
