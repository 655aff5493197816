package domain

import "time"

type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "High"
	SeverityMedium AlertSeverity = "Medium"
	SeverityLow    AlertSeverity = "Low"
)

func (s AlertSeverity) Valid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

type AlertStatus string

const (
	AlertPending   AlertStatus = "pending"
	AlertConfirmed AlertStatus = "confirmed"
	AlertDismissed AlertStatus = "dismissed"
)

type SecurityAlert struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Time      string        `json:"time"`
	Severity  AlertSeverity `json:"severity"`
	Image     string        `json:"image"`
	Status    AlertStatus   `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

type AlertFilter struct {
	Status   AlertStatus
	Severity AlertSeverity
	Page     int
	Limit    int
}
