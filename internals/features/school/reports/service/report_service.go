package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"dancebook_backend/internals/cache"
	"dancebook_backend/internals/configs"
	"dancebook_backend/internals/features/school/reports/model"
)

const attendanceSQL = `
SELECT c.id AS class_id,
       c.name AS class_name,
       TRIM(i.first_name || ' ' || i.last_name) AS instructor_name,
       c.start_time AS date,
       COUNT(b.id) AS booked_slots,
       c.max_participants AS max_slots
FROM classes c
JOIN instructors i ON i.id = c.instructor_id
LEFT JOIN bookings b ON b.class_id = c.id
WHERE c.start_time BETWEEN ? AND ?
GROUP BY c.id, c.name, i.first_name, i.last_name, c.start_time, c.max_participants
ORDER BY c.start_time DESC, c.id`

const popularSQL = `
SELECT c.id AS class_id, c.name AS name, COUNT(b.id) AS booking_count
FROM classes c
LEFT JOIN bookings b ON b.class_id = c.id
WHERE c.start_time BETWEEN ? AND ?
GROUP BY c.id, c.name
ORDER BY booking_count DESC, c.name ASC, c.id ASC
LIMIT 5`

const peakHoursSQL = `
SELECT CAST(EXTRACT(HOUR FROM c.start_time AT TIME ZONE 'UTC') AS INTEGER) AS hour,
       COUNT(*) AS class_count
FROM classes c
WHERE c.start_time BETWEEN ? AND ?
GROUP BY 1
ORDER BY 1 ASC`

const styleSQL = `
SELECT c.style AS style, COUNT(*) AS count
FROM classes c
WHERE c.start_time BETWEEN ? AND ?
GROUP BY c.style
ORDER BY count DESC, c.style ASC`

type ReportService struct {
	DB    *gorm.DB
	Cache *cache.RedisCache
	TTL   time.Duration
	Now   func() time.Time
}

func NewReportService(db *gorm.DB, rc *cache.RedisCache) *ReportService {
	return &ReportService{DB: db, Cache: rc, TTL: configs.ReportCacheTTL, Now: time.Now}
}

func (s *ReportService) attendanceRows(ctx context.Context, w Window) ([]model.AttendanceRow, error) {
	rows := []model.AttendanceRow{}
	if err := s.DB.WithContext(ctx).Raw(attendanceSQL, w.From, w.To).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("attendance report: %w", err)
	}
	for i := range rows {
		rows[i].AttendanceRate = AttendanceRate(rows[i].BookedSlots, rows[i].MaxSlots)
	}
	return rows, nil
}

// AttendanceReport lists every class starting inside the period with its booking fill rate.
func (s *ReportService) AttendanceReport(ctx context.Context, period string) (model.AttendanceReport, error) {
	w := ResolveWindow(KindAttendance, period, s.Now())
	return cache.GetOrSet(s.Cache, ctx, w.CacheKey(KindAttendance), s.TTL, func() (model.AttendanceReport, error) {
		rows, err := s.attendanceRows(ctx, w)
		if err != nil {
			return model.AttendanceReport{}, err
		}
		return model.AttendanceReport{Period: w.Period, From: w.From, To: w.To, Rows: rows}, nil
	})
}

func (s *ReportService) ClassAnalytics(ctx context.Context, period string) (model.AnalyticsReport, error) {
	w := ResolveWindow(KindAnalytics, period, s.Now())
	return cache.GetOrSet(s.Cache, ctx, w.CacheKey(KindAnalytics), s.TTL, func() (model.AnalyticsReport, error) {
		out := model.AnalyticsReport{Period: w.Period, From: w.From, To: w.To}
		out.PopularClasses = []model.PopularClass{}
		out.PeakHours = []model.PeakHour{}
		out.StyleDistribution = []model.StyleCount{}

		db := s.DB.WithContext(ctx)
		if err := db.Raw(popularSQL, w.From, w.To).Scan(&out.PopularClasses).Error; err != nil {
			return out, fmt.Errorf("popular classes: %w", err)
		}
		if err := db.Raw(peakHoursSQL, w.From, w.To).Scan(&out.PeakHours).Error; err != nil {
			return out, fmt.Errorf("peak hours: %w", err)
		}
		if err := db.Raw(styleSQL, w.From, w.To).Scan(&out.StyleDistribution).Error; err != nil {
			return out, fmt.Errorf("style distribution: %w", err)
		}
		zap.L().Debug("📊 analytics computed",
			zap.String("period", w.Period),
			zap.Int("popular", len(out.PopularClasses)),
			zap.Int("styles", len(out.StyleDistribution)),
		)
		return out, nil
	})
}
