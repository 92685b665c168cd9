package redfish

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/iryanin/redfish-monitor/internal/errors"
)

// sensorsResponse is the ThresholdSensors resource. The Sensors pointer
// distinguishes an empty list from a response that lacks the field entirely.
type sensorsResponse struct {
	Sensors *[]sensorEntry `json:"Sensors"`
}

// sensorEntry is one element of the Sensors array. Reading stays raw so a
// missing or non-numeric value degrades to an absent metric instead of
// failing the whole response.
type sensorEntry struct {
	Name    string          `json:"Name"`
	Reading json.RawMessage `json:"Reading"`
}

// metric converts a raw Reading value into a Metric. Anything that is not a
// non-negative JSON integer is treated as absent.
func (e sensorEntry) metric() Metric {
	if len(e.Reading) == 0 {
		return Metric{}
	}
	var v uint64
	if err := json.Unmarshal(e.Reading, &v); err != nil {
		return Metric{}
	}
	return Metric{Value: v, Valid: true}
}

// Sensors fetches the current threshold-sensor readings from one controller.
// Any failure (network error, unparsable body, missing Sensors field) returns
// an error; callers skip the controller for the cycle. Sensor names outside
// the recognized set are ignored.
func (c *Client) Sensors(ctx context.Context, addr, token string) (Reading, error) {
	var reading Reading

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL(addr)+sensorsPath, nil)
	if err != nil {
		return reading, err
	}
	req.Header.Set("X-Auth-Token", token)

	resp, err := c.http.Do(req)
	if err != nil {
		return reading, errors.Wrap(err, fmt.Sprintf("Sensor request to %s failed", addr))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return reading, errors.Wrap(err, fmt.Sprintf("Sensor response from %s could not be read", addr))
	}

	var parsed sensorsResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return reading, errors.Wrap(err, fmt.Sprintf("Sensor response from %s is not valid JSON", addr))
	}
	if parsed.Sensors == nil {
		return reading, errors.New(errors.ErrTransport,
			fmt.Sprintf("Sensor response from %s has no Sensors field", addr),
			"The controller may have rejected the auth token")
	}

	for _, entry := range *parsed.Sensors {
		switch entry.Name {
		case SensorPSU1PIN:
			reading.PSUInput = entry.metric()
		case SensorCPUPower:
			reading.CPUTotal = entry.metric()
		case SensorCPU0Pwr:
			reading.CPU0Power = entry.metric()
		case SensorCPU1Pwr:
			reading.CPU1Power = entry.metric()
		case SensorCPU0Temp:
			reading.CPU0Temp = entry.metric()
		case SensorCPU1Temp:
			reading.CPU1Temp = entry.metric()
		case SensorFanPower:
			reading.FanPower = entry.metric()
		}
	}

	return reading, nil
}
