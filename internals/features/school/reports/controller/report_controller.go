package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dancebook_backend/internals/cache"
	"dancebook_backend/internals/features/school/reports/service"
	helper "dancebook_backend/internals/helpers"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	Service *service.ReportService
}

func NewReportController(db *gorm.DB, rc *cache.RedisCache) *ReportController {
	return &ReportController{Service: service.NewReportService(db, rc)}
}

func period(c *fiber.Ctx) string {
	p := strings.TrimSpace(c.Params("period"))
	if p == "" {
		return "month"
	}
	return p
}

// GET /api/reports/attendance/:period
func (ctl *ReportController) Attendance(c *fiber.Ctx) error {
	rep, err := ctl.Service.AttendanceReport(helper.ReqCtx(c), period(c))
	if err != nil {
		return helper.Escalate(c, "attendance report", err)
	}
	return helper.JsonOK(c, "ok", rep)
}

// GET /api/reports/attendance/:period/export
func (ctl *ReportController) ExportAttendance(c *fiber.Ctx) error {
	data, name, err := ctl.Service.ExportAttendanceXLSX(helper.ReqCtx(c), period(c))
	if err != nil {
		return helper.Escalate(c, "attendance export", err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(data)
}

// GET /api/reports/analytics/:period
func (ctl *ReportController) Analytics(c *fiber.Ctx) error {
	rep, err := ctl.Service.ClassAnalytics(helper.ReqCtx(c), period(c))
	if err != nil {
		return helper.Escalate(c, "class analytics", err)
	}
	return helper.JsonOK(c, "ok", rep)
}
