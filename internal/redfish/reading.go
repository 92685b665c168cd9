// Package redfish implements a minimal client for the Redfish management API
// exposed by server baseboard management controllers: one session login per
// controller and polling of the chassis threshold sensors.
package redfish

// Recognized sensor names reported by the ThresholdSensors resource.
const (
	SensorPSU1PIN  = "PSU1_PIN"
	SensorCPUPower = "CPU_Power"
	SensorCPU0Pwr  = "CPU0_Power"
	SensorCPU1Pwr  = "CPU1_Power"
	SensorCPU0Temp = "CPU0_Temp"
	SensorCPU1Temp = "CPU1_Temp"
	SensorFanPower = "Fan_Power"
)

// Metric is a single sensor value in the controller's native units
// (watts or degrees Celsius). A controller may omit any sensor from a
// response; Valid distinguishes a real zero from an absent reading.
type Metric struct {
	Value uint64
	Valid bool
}

// Display returns the value to show on screen, defaulting absent metrics to 0.
// The zero default exists only at render time; stored readings keep absence.
func (m Metric) Display() uint64 {
	if !m.Valid {
		return 0
	}
	return m.Value
}

// Reading holds one controller's power and thermal metrics from a single
// poll cycle. Each metric is independently present or absent.
type Reading struct {
	PSUInput  Metric // PSU1_PIN, input power in watts
	CPUTotal  Metric // CPU_Power, total CPU package power in watts
	CPU0Power Metric // CPU0_Power, watts
	CPU1Power Metric // CPU1_Power, watts
	CPU0Temp  Metric // CPU0_Temp, degrees Celsius
	CPU1Temp  Metric // CPU1_Temp, degrees Celsius
	FanPower  Metric // Fan_Power, watts
}

// Snapshot maps controller addresses to their most recent readings.
// Entries exist only for controllers that returned a parsable response
// during the poll cycle that produced the snapshot.
type Snapshot map[string]Reading
