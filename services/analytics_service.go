package services

import (
	"time"

	"dineinn/repository"
)

// dayFormat fixes the bucket key. Day boundaries use the server's local
// timezone (local midnight); a scan at 23:59 and one at 00:01 land in
// different buckets.
const dayFormat = "2006-01-02"

type AnalyticsService struct {
	Repo     *repository.AnalyticsRepository
	RestRepo *repository.RestaurantRepository
}

func NewAnalyticsService(repo *repository.AnalyticsRepository, restRepo *repository.RestaurantRepository) *AnalyticsService {
	return &AnalyticsService{Repo: repo, RestRepo: restRepo}
}

// RecordScan bumps today's bucket for the restaurant.
func (s *AnalyticsService) RecordScan(restID uint) error {
	return s.Repo.IncrementScan(restID, time.Now().Format(dayFormat))
}

type DayCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

type ScanWindowOut struct {
	Days  []DayCount `json:"days"`
	Total int64      `json:"total"`
}

// ScanWindow returns one bucket per calendar day for the trailing window
// ending today (inclusive), oldest first, absent days zero-filled, plus
// the running total.
func (s *AnalyticsService) ScanWindow(ownerID, restID uint, days int) (*ScanWindowOut, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return s.scanWindowAt(restID, days, time.Now())
}

// scanWindowAt exists so tests can pin "today".
func (s *AnalyticsService) scanWindowAt(restID uint, days int, now time.Time) (*ScanWindowOut, error) {
	if days <= 0 {
		days = 7
	}
	from := now.AddDate(0, 0, -(days - 1))
	buckets, err := s.Repo.ListBuckets(restID, from.Format(dayFormat), now.Format(dayFormat))
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]int64, len(buckets))
	for _, b := range buckets {
		byDay[b.Day] = b.Count
	}

	out := &ScanWindowOut{Days: make([]DayCount, 0, days)}
	for i := 0; i < days; i++ {
		day := from.AddDate(0, 0, i).Format(dayFormat)
		cnt := byDay[day]
		out.Days = append(out.Days, DayCount{Day: day, Count: cnt})
		out.Total += cnt
	}
	return out, nil
}
