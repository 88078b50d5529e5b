package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceRow struct {
	ClassID        uuid.UUID `gorm:"column:class_id" json:"class_id"`
	ClassName      string    `gorm:"column:class_name" json:"class_name"`
	InstructorName string    `gorm:"column:instructor_name" json:"instructor_name"`
	Date           time.Time `gorm:"column:date" json:"date"`
	BookedSlots    int64     `gorm:"column:booked_slots" json:"booked_slots"`
	MaxSlots       int       `gorm:"column:max_slots" json:"max_slots"`
	AttendanceRate float64   `gorm:"-" json:"attendance_rate"`
}

type PopularClass struct {
	ClassID      uuid.UUID `gorm:"column:class_id" json:"class_id"`
	Name         string    `gorm:"column:name" json:"name"`
	BookingCount int64     `gorm:"column:booking_count" json:"booking_count"`
}

type PeakHour struct {
	Hour       int   `gorm:"column:hour" json:"hour"`
	ClassCount int64 `gorm:"column:class_count" json:"class_count"`
}

type StyleCount struct {
	Style string `gorm:"column:style" json:"style"`
	Count int64  `gorm:"column:count" json:"count"`
}

type Analytics struct {
	PopularClasses    []PopularClass `json:"popular_classes"`
	PeakHours         []PeakHour     `json:"peak_hours"`
	StyleDistribution []StyleCount   `json:"style_distribution"`
}

// AttendanceReport wraps the rows with the window they cover.
type AttendanceReport struct {
	Period string          `json:"period"`
	From   time.Time       `json:"from"`
	To     time.Time       `json:"to"`
	Rows   []AttendanceRow `json:"rows"`
}

type AnalyticsReport struct {
	Period string    `json:"period"`
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
	Analytics
}
