package redfish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/iryanin/redfish-monitor/internal/errors"
)

// loginRequest is the session-creation body expected by the controllers.
type loginRequest struct {
	UserName string `json:"UserName"`
	Password string `json:"Password"`
}

// loginResponse carries the vendor-specific token location. Missing levels
// of nesting simply leave Token empty.
type loginResponse struct {
	Oem struct {
		Public struct {
			Token string `json:"X-Auth-Token"`
		} `json:"Public"`
	} `json:"Oem"`
}

// Login performs one session-creation exchange against a controller and
// returns the auth token. A malformed or tokenless response body degrades to
// an empty token; only a transport-level failure (request could not be sent
// or a response could not be received) returns an error.
func (c *Client) Login(ctx context.Context, addr string) (string, error) {
	body, err := json.Marshal(loginRequest{UserName: c.username, Password: c.password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL(addr)+sessionPath, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrSession,
			fmt.Sprintf("Login request to %s could not be sent", addr),
			"Check the controller address and that its management interface is reachable")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrSession,
			fmt.Sprintf("Login response from %s could not be read", addr),
			"The controller closed the connection mid-response; check its management firmware")
	}

	var parsed loginResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		// Malformed body: this controller gets an empty token and its
		// sensor polls will come back unauthenticated. Not fatal.
		c.log.Debug("login %s: unparsable response body: %v", addr, err)
		return "", nil
	}

	if parsed.Oem.Public.Token == "" {
		c.log.Debug("login %s: response carried no X-Auth-Token", addr)
	}
	return parsed.Oem.Public.Token, nil
}

// LoginAll logs into every controller in order and returns a token slice
// parallel to addrs (same length, same index correspondence). A controller
// whose login degraded still occupies its slot with an empty token.
// Transport-level failures abort the whole run.
func (c *Client) LoginAll(ctx context.Context, addrs []string) ([]string, error) {
	tokens := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		token, err := c.Login(ctx, addr)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}
