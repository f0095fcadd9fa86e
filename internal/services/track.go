package services

import (
	"context"
	"time"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/models"
	"github.com/google/uuid"
)

const recentVisitsLimit = 100

// IPLookuper resolves an IP address to geolocation data.
type IPLookuper interface {
	Lookup(ctx context.Context, ip string) (*models.IPInfo, error)
}

// VisitWriter persists tracked visits.
type VisitWriter interface {
	Save(ctx context.Context, v *models.Visit) error
}

// VisitReader lists tracked visits.
type VisitReader interface {
	ListRecent(ctx context.Context, limit int) ([]models.Visit, error)
}

// TrackService records page visits with best-effort geolocation.
type TrackService struct {
	lookup IPLookuper
	writer VisitWriter
	reader VisitReader
}

// NewTrackService creates a new TrackService instance.
func NewTrackService(lookup IPLookuper, writer VisitWriter, reader VisitReader) *TrackService {
	return &TrackService{
		lookup: lookup,
		writer: writer,
		reader: reader,
	}
}

// TrackVisit looks up the client IP and persists the visit. A failed lookup
// still records the bare visit; geolocation is best effort.
func (svc *TrackService) TrackVisit(ctx context.Context, ip, userAgent string) (*models.Visit, error) {
	visit := &models.Visit{
		VisitID:   uuid.New(),
		IP:        ip,
		CreatedAt: time.Now().UTC(),
	}
	if userAgent != "" {
		visit.UserAgent = &userAgent
	}

	info, err := svc.lookup.Lookup(ctx, ip)
	if err != nil {
		logger.Log.Errorw("ip lookup failed", "ip", ip, "err", err)
	} else if info != nil {
		if info.IP != "" {
			visit.IP = info.IP
		}
		visit.Hostname = optional(info.Hostname)
		visit.City = optional(info.City)
		visit.Region = optional(info.Region)
		visit.Country = optional(info.Country)
		visit.Location = optional(info.Loc)
		visit.Org = optional(info.Org)
		visit.Postal = optional(info.Postal)
		visit.Timezone = optional(info.Timezone)
	}

	if err := svc.writer.Save(ctx, visit); err != nil {
		logger.Log.Errorw("failed to save visit", "ip", ip, "err", err)
		return nil, err
	}

	return visit, nil
}

// ListRecentVisits returns the newest tracked visits.
func (svc *TrackService) ListRecentVisits(ctx context.Context) ([]models.Visit, error) {
	visits, err := svc.reader.ListRecent(ctx, recentVisitsLimit)
	if err != nil {
		logger.Log.Errorw("failed to list visits", "err", err)
		return nil, err
	}
	return visits, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
