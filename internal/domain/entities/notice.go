package entities

import (
	"time"

	"github.com/google/uuid"
)

// NoticeLevel represents how prominently a notice should be shown
type NoticeLevel string

const (
	NoticeLevelInfo    NoticeLevel = "info"
	NoticeLevelWarning NoticeLevel = "warning"
	NoticeLevelError   NoticeLevel = "error"
)

// Notice is a user-visible message (toast or banner) raised by the API layer
type Notice struct {
	ID        string      `json:"id"`
	Level     NoticeLevel `json:"level"`
	Title     string      `json:"title"`
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewNotice creates a notice stamped with a fresh id and the current time
func NewNotice(level NoticeLevel, title, message string) Notice {
	return Notice{
		ID:        uuid.NewString(),
		Level:     level,
		Title:     title,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NavigationIntent asks the UI to move to Route
type NavigationIntent struct {
	ID        string    `json:"id"`
	Route     string    `json:"route"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewNavigationIntent creates a navigation intent for route
func NewNavigationIntent(route, reason string) NavigationIntent {
	return NavigationIntent{
		ID:        uuid.NewString(),
		Route:     route,
		Reason:    reason,
		Timestamp: time.Now(),
	}
}
