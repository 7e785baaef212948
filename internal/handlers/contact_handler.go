package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/dance-school/internal/audit"
	"github.com/BruksfildServices01/dance-school/internal/domain/school"
	"github.com/BruksfildServices01/dance-school/internal/httperr"
	"github.com/BruksfildServices01/dance-school/internal/httpresp"
)

// ContactHandler accepts messages from the public contact form. Messages
// are recorded in the log and the audit trail; nothing is mailed.
type ContactHandler struct {
	audit *audit.Dispatcher
	log   logrus.FieldLogger
}

func NewContactHandler(audit *audit.Dispatcher, log logrus.FieldLogger) *ContactHandler {
	return &ContactHandler{audit: audit, log: log}
}

type ContactRequest struct {
	Name    string `form:"name" json:"name" binding:"required,max=100"`
	Email   string `form:"email" json:"email" binding:"required,email,max=100"`
	Phone   string `form:"phone" json:"phone" binding:"max=20"`
	Message string `form:"message" json:"message" binding:"required,max=5000"`
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	email := school.NormalizeEmail(req.Email)

	h.log.WithFields(logrus.Fields{
		"name":  req.Name,
		"email": email,
	}).Info("contact message received")

	h.audit.Dispatch(audit.Event{
		Action: audit.ActionContactSubmitted,
		Entity: "contact",
		Metadata: map[string]string{
			"name":    req.Name,
			"email":   email,
			"phone":   req.Phone,
			"message": req.Message,
		},
	})

	httpresp.Accepted(c, gin.H{"status": "received"})
}
