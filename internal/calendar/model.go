package calendar

import "time"

// PermissionStatus is the outcome of a calendar permission request
type PermissionStatus string

const (
	PermissionGranted PermissionStatus = "granted"
	PermissionDenied  PermissionStatus = "denied"
)

// Calendar describes one calendar available on the device
type Calendar struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Writable bool   `json:"writable"`
}

// Event is a calendar event to be scheduled
type Event struct {
	Title string    `json:"title"`
	Notes string    `json:"notes,omitempty"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
