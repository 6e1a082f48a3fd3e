package services

import (
	"testing"
	"time"

	"dineinn/entity"
	"dineinn/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyticsService(f *fixture) *AnalyticsService {
	return NewAnalyticsService(
		repository.NewAnalyticsRepository(f.db),
		repository.NewRestaurantRepository(f.db),
	)
}

func TestScanWindowZeroFillsAbsentDays(t *testing.T) {
	f := newFixture(t)
	svc := newAnalyticsService(f)

	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)
	// window is Mar 4..Mar 10; scans only on day 3 (Mar 6) and day 5 (Mar 8)
	require.NoError(t, f.db.Create(&entity.ScanBucket{
		RestaurantID: f.rest.ID, Day: "2026-03-06", Count: 4,
	}).Error)
	require.NoError(t, f.db.Create(&entity.ScanBucket{
		RestaurantID: f.rest.ID, Day: "2026-03-08", Count: 2,
	}).Error)

	out, err := svc.scanWindowAt(f.rest.ID, 7, now)
	require.NoError(t, err)

	require.Len(t, out.Days, 7)
	assert.Equal(t, "2026-03-04", out.Days[0].Day)
	assert.Equal(t, "2026-03-10", out.Days[6].Day)

	counts := make([]int64, 0, 7)
	for _, d := range out.Days {
		counts = append(counts, d.Count)
	}
	assert.Equal(t, []int64{0, 0, 4, 0, 2, 0, 0}, counts)
	assert.EqualValues(t, 6, out.Total)
}

func TestScanWindowIgnoresOtherTenants(t *testing.T) {
	f := newFixture(t)
	svc := newAnalyticsService(f)

	other := entity.Restaurant{Name: "Other", Subdomain: "otherx", OwnerID: f.owner.ID}
	require.NoError(t, f.db.Create(&other).Error)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	require.NoError(t, f.db.Create(&entity.ScanBucket{
		RestaurantID: other.ID, Day: "2026-03-09", Count: 9,
	}).Error)

	out, err := svc.scanWindowAt(f.rest.ID, 7, now)
	require.NoError(t, err)
	assert.Zero(t, out.Total)
}

func TestRecordScanUpsertsSameDay(t *testing.T) {
	f := newFixture(t)
	svc := newAnalyticsService(f)

	require.NoError(t, svc.RecordScan(f.rest.ID))
	require.NoError(t, svc.RecordScan(f.rest.ID))
	require.NoError(t, svc.RecordScan(f.rest.ID))

	var buckets []entity.ScanBucket
	require.NoError(t, f.db.Where("restaurant_id = ?", f.rest.ID).Find(&buckets).Error)
	require.Len(t, buckets, 1)
	assert.EqualValues(t, 3, buckets[0].Count)
	assert.Equal(t, time.Now().Format(dayFormat), buckets[0].Day)
}

func TestScanWindowRequiresOwnership(t *testing.T) {
	f := newFixture(t)
	svc := newAnalyticsService(f)

	stranger := entity.Owner{Email: "nope@example.com", Password: "x"}
	require.NoError(t, f.db.Create(&stranger).Error)

	_, err := svc.ScanWindow(stranger.ID, f.rest.ID, 7)
	assert.ErrorIs(t, err, ErrForbidden)
}
