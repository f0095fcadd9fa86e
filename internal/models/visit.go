package models

import (
	"time"

	"github.com/google/uuid"
)

// IPInfo is the geolocation payload returned by the lookup provider.
type IPInfo struct {
	IP       string `json:"ip"`
	Hostname string `json:"hostname,omitempty"`
	City     string `json:"city,omitempty"`
	Region   string `json:"region,omitempty"`
	Country  string `json:"country,omitempty"`
	Loc      string `json:"loc,omitempty"`
	Org      string `json:"org,omitempty"`
	Postal   string `json:"postal,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// Visit represents a tracked page visit in the database
type Visit struct {
	VisitID   uuid.UUID `json:"id" db:"visit_id"`
	IP        string    `json:"ip" db:"ip"`
	Hostname  *string   `json:"hostname" db:"hostname"`
	City      *string   `json:"city" db:"city"`
	Region    *string   `json:"region" db:"region"`
	Country   *string   `json:"country" db:"country"`
	Location  *string   `json:"location" db:"location"`
	Org       *string   `json:"organization" db:"org"`
	Postal    *string   `json:"postal" db:"postal"`
	Timezone  *string   `json:"timezone" db:"timezone"`
	UserAgent *string   `json:"user_agent" db:"user_agent"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
