package main

import (
	"strings"

	"i4.energy/across/gsmquery/modem"
)

// Report is the JSON form of a fetch outcome, returned by the HTTP server and
// published over MQTT.
type Report struct {
	ID          string  `json:"id"`
	Command     string  `json:"command"`
	Kind        string  `json:"kind"`
	Value       string  `json:"value,omitempty"`
	Code        string  `json:"code,omitempty"`
	Description string  `json:"description,omitempty"`
	Elapsed     float64 `json:"elapsed"`
}

func newReport(id string, command []byte, o modem.Outcome) Report {
	r := Report{
		ID:      id,
		Command: strings.TrimSpace(string(command)),
		Kind:    o.Kind.String(),
		Elapsed: o.Elapsed.Seconds(),
	}
	switch err := o.Err().(type) {
	case nil:
		r.Value = o.Value
	case *modem.DeviceError:
		r.Code = err.Code
		r.Description = err.Description()
	case *modem.NetworkError:
		r.Code = err.Code
		r.Description = err.Description()
	default:
		r.Description = err.Error()
	}
	return r
}
