package types

// TrafficLight represents the urgency classification of an open complaint
// against the 8-week regulatory resolution window
type TrafficLight string

const (
	TrafficGreen TrafficLight = "green"
	TrafficAmber TrafficLight = "amber"
	TrafficRed   TrafficLight = "red"
)

// IsValid checks if the traffic light value is valid
func (t TrafficLight) IsValid() bool {
	switch t {
	case TrafficGreen, TrafficAmber, TrafficRed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the traffic light
func (t TrafficLight) String() string {
	return string(t)
}
