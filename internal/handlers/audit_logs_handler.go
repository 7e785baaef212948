package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/dance-school/internal/httperr"
	"github.com/BruksfildServices01/dance-school/internal/httpresp"
	"github.com/BruksfildServices01/dance-school/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

func NewAuditLogsHandler(db *gorm.DB, log logrus.FieldLogger) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, log: log}
}

type auditLogsQuery struct {
	Action string `form:"action" binding:"max=50"`
	Entity string `form:"entity" binding:"max=50"`
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Page   int    `form:"page,default=1" binding:"min=1"`
	Limit  int    `form:"limit,default=50" binding:"min=1,max=200"`
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	var in auditLogsQuery
	if err := c.ShouldBindQuery(&in); err != nil {
		httperr.Invalid(c, err)
		return
	}

	offset := (in.Page - 1) * in.Limit

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------

	if in.Action != "" {
		q = q.Where("action = ?", in.Action)
	}

	if in.Entity != "" {
		q = q.Where("entity = ?", in.Entity)
	}

	if in.From != "" {
		from, _ := time.Parse("2006-01-02", in.From)
		q = q.Where("created_at >= ?", from)
	}

	// "to" is inclusive of the whole day.
	if in.To != "" {
		to, _ := time.Parse("2006-01-02", in.To)
		q = q.Where("created_at < ?", to.Add(24*time.Hour))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		writeError(c, h.log, err)
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(in.Limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Paged(c, in.Page, in.Limit, total, logs)
}
