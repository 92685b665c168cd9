package redfish

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSensors(t *testing.T) {
	var gotPath, gotToken string

	addr, client := newController(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Auth-Token")
		w.Write([]byte(`{"Sensors":[
			{"Name":"PSU1_PIN","Reading":320},
			{"Name":"CPU_Power","Reading":120},
			{"Name":"CPU0_Power","Reading":62},
			{"Name":"CPU1_Power","Reading":58},
			{"Name":"CPU0_Temp","Reading":47},
			{"Name":"CPU1_Temp","Reading":51},
			{"Name":"Fan_Power","Reading":15}
		]}`))
	})

	reading, err := client.Sensors(context.Background(), addr, "tok-123")
	require.NoError(t, err)

	assert.Equal(t, "/redfish/v1/Chassis/1/ThresholdSensors", gotPath)
	assert.Equal(t, "tok-123", gotToken)

	assert.Equal(t, Metric{Value: 320, Valid: true}, reading.PSUInput)
	assert.Equal(t, Metric{Value: 120, Valid: true}, reading.CPUTotal)
	assert.Equal(t, Metric{Value: 62, Valid: true}, reading.CPU0Power)
	assert.Equal(t, Metric{Value: 58, Valid: true}, reading.CPU1Power)
	assert.Equal(t, Metric{Value: 47, Valid: true}, reading.CPU0Temp)
	assert.Equal(t, Metric{Value: 51, Valid: true}, reading.CPU1Temp)
	assert.Equal(t, Metric{Value: 15, Valid: true}, reading.FanPower)
}

func TestSensorsPartialResponse(t *testing.T) {
	addr, client := newController(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Sensors":[
			{"Name":"CPU_Power","Reading":120},
			{"Name":"Fan_Power","Reading":15}
		]}`))
	})

	reading, err := client.Sensors(context.Background(), addr, "tok")
	require.NoError(t, err)

	assert.Equal(t, Metric{Value: 120, Valid: true}, reading.CPUTotal)
	assert.Equal(t, Metric{Value: 15, Valid: true}, reading.FanPower)

	// Everything the controller omitted is absent, not zero.
	assert.False(t, reading.PSUInput.Valid)
	assert.False(t, reading.CPU0Power.Valid)
	assert.False(t, reading.CPU1Power.Valid)
	assert.False(t, reading.CPU0Temp.Valid)
	assert.False(t, reading.CPU1Temp.Valid)
}

func TestSensorsUnrecognizedNamesIgnored(t *testing.T) {
	addr, client := newController(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Sensors":[
			{"Name":"Unknown_Sensor","Reading":999},
			{"Name":"CPU_Power","Reading":80}
		]}`))
	})

	reading, err := client.Sensors(context.Background(), addr, "tok")
	require.NoError(t, err)

	assert.Equal(t, Metric{Value: 80, Valid: true}, reading.CPUTotal)
	assert.Equal(t, Reading{CPUTotal: Metric{Value: 80, Valid: true}}, reading)
}

func TestSensorsDegradedReadingField(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing reading", `{"Sensors":[{"Name":"CPU_Power"}]}`},
		{"null reading", `{"Sensors":[{"Name":"CPU_Power","Reading":null}]}`},
		{"string reading", `{"Sensors":[{"Name":"CPU_Power","Reading":"hot"}]}`},
		{"negative reading", `{"Sensors":[{"Name":"CPU_Power","Reading":-5}]}`},
		{"fractional reading", `{"Sensors":[{"Name":"CPU_Power","Reading":12.5}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, client := newController(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			reading, err := client.Sensors(context.Background(), addr, "tok")
			require.NoError(t, err)

			// The metric is absent for this cycle, never zero-valued.
			assert.False(t, reading.CPUTotal.Valid)
			assert.Equal(t, uint64(0), reading.CPUTotal.Display())
		})
	}
}

func TestSensorsFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>error</html>"},
		{"missing sensors field", `{"Error":"unauthorized"}`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, client := newController(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			_, err := client.Sensors(context.Background(), addr, "tok")
			require.Error(t, err)
		})
	}
}

func TestSensorsEmptyListSucceeds(t *testing.T) {
	addr, client := newController(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Sensors":[]}`))
	})

	// An empty list is a parsable response: the controller gets a snapshot
	// entry with every metric absent, unlike a missing Sensors field.
	reading, err := client.Sensors(context.Background(), addr, "tok")
	require.NoError(t, err)
	assert.Equal(t, Reading{}, reading)
}

func TestSensorsNetworkError(t *testing.T) {
	_, client := newController(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.Sensors(context.Background(), "127.0.0.1:1", "tok")
	require.Error(t, err)
}

func TestMetricDisplay(t *testing.T) {
	assert.Equal(t, uint64(0), Metric{}.Display())
	assert.Equal(t, uint64(0), Metric{Value: 7}.Display())
	assert.Equal(t, uint64(7), Metric{Value: 7, Valid: true}.Display())
}
