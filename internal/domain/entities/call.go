package entities

import "time"

// CallStatus is the state of a nurse call. The set is open: the backend may
// send values not listed here and they are kept as-is.
type CallStatus string

const (
	CallStatusPending   CallStatus = "pending"
	CallStatusAnswered  CallStatus = "answered"
	CallStatusCancelled CallStatus = "cancelled"
	CallStatusUrgent    CallStatus = "urgent"
)

// Known reports whether s is one of the statuses listed above
func (s CallStatus) Known() bool {
	switch s {
	case CallStatusPending, CallStatusAnswered, CallStatusCancelled, CallStatusUrgent:
		return true
	}
	return false
}

// Call represents a nurse call raised from a bed device
type Call struct {
	ID           string     `json:"id"`
	Device       string     `json:"device"`
	Bed          string     `json:"bed"`
	CallTime     time.Time  `json:"call_time"`
	Status       CallStatus `json:"status"`
	ResponseTime *time.Time `json:"response_time"`
	Nurse        *string    `json:"nurse"`
}

// CallInput is the write shape of a Call
type CallInput struct {
	Device       *string     `json:"device,omitempty"`
	Bed          *string     `json:"bed,omitempty"`
	CallTime     *time.Time  `json:"call_time,omitempty"`
	Status       *CallStatus `json:"status,omitempty"`
	ResponseTime *time.Time  `json:"response_time,omitempty"`
	Nurse        *string     `json:"nurse,omitempty"`
}
