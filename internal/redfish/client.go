package redfish

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/iryanin/redfish-monitor/internal/logger"
)

// Redfish resource paths on each controller.
const (
	sessionPath = "/redfish/v1/SessionService/Sessions"
	sensorsPath = "/redfish/v1/Chassis/1/ThresholdSensors"
)

// DefaultTimeout bounds a single request to one controller.
const DefaultTimeout = 5 * time.Second

// Client talks to a set of management controllers over HTTPS.
// Certificate validation is disabled: management-controller interfaces
// almost universally present self-signed certificates, and the client is
// only ever pointed at a management network. This is a deliberate trust
// decision, not a general-purpose default.
type Client struct {
	http     *http.Client
	username string
	password string
	log      logger.Logger
}

// NewClient creates a client that authenticates with the given credentials.
// A timeout of 0 uses DefaultTimeout. A nil log discards debug output.
func NewClient(username, password string, timeout time.Duration, log logger.Logger) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.Noop()
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}

	return &Client{
		http: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		username: username,
		password: password,
		log:      log,
	}
}

// baseURL builds the HTTPS base for a controller address (host or host:port).
func baseURL(addr string) string {
	return "https://" + addr
}
