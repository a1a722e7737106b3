// Package entity contains the core business objects of the project.
package entity

import "fmt"

// Sentinel values used whenever a client IP cannot be located.
const (
	UnknownCity         = "Unknown city"
	UnknownCountry      = "Unknown country"
	LocationUnavailable = "Location unavailable"
)

// OwnerAlert is a request to tell a pet owner that their pet's tag was scanned.
// It lives only for the duration of one request.
type OwnerAlert struct {
	PetID      string `json:"pet_id"`      // Identifier of the pet whose tag was scanned.
	PetName    string `json:"pet_name"`    // Display name of the pet.
	OwnerPhone string `json:"owner_phone"` // Owner phone number in E.164 format.
	Timestamp  string `json:"timestamp"`   // Client-reported scan time (informational).
	UserAgent  string `json:"user_agent"`  // Browser user agent of the finder.
	PageURL    string `json:"page_url"`    // Page the finder was on when the alert was triggered.
	ClientIP   string `json:"client_ip"`   // Finder IP, or "unknown".
	RequestID  string `json:"-"`
}

// LocationInfo is an approximate location derived from a client IP.
type LocationInfo struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Region  string `json:"region"`
}

// UnknownLocation returns the sentinel location.
func UnknownLocation() LocationInfo {
	return LocationInfo{City: UnknownCity, Country: UnknownCountry, Region: ""}
}

// IsKnown reports whether the city could be determined.
func (l LocationInfo) IsKnown() bool {
	return l.City != "" && l.City != UnknownCity
}

// Text renders the location the way it is sent to the owner.
func (l LocationInfo) Text() string {
	if !l.IsKnown() {
		return LocationUnavailable
	}

	return fmt.Sprintf("%s, %s", l.City, l.Country)
}

// WebhookResult is the normalized outcome of dispatching an owner alert.
type WebhookResult struct {
	Success   bool   `json:"success"`
	WebhookID string `json:"webhook_id"` // Never empty on success.
}

// AlertReceipt is what the finder's browser gets back after an alert is dispatched.
type AlertReceipt struct {
	WebhookID    string `json:"webhook_id"`
	Location     string `json:"location"`
	Timestamp    string `json:"timestamp"`
	IsSimulation bool   `json:"is_simulation"`
}
