package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/dance-school/internal/domain/school"
	"github.com/BruksfildServices01/dance-school/internal/dto"
	"github.com/BruksfildServices01/dance-school/internal/httpresp"
	"github.com/BruksfildServices01/dance-school/internal/middleware"
)

type AdminHandler struct {
	repo school.Repository
	log  logrus.FieldLogger
}

func NewAdminHandler(repo school.Repository, log logrus.FieldLogger) *AdminHandler {
	return &AdminHandler{repo: repo, log: log}
}

// Overview returns everything the admin dashboard shows, capped at
// school.MaxLimit rows per collection.
func (h *AdminHandler) Overview(c *gin.Context) {
	ctx := c.Request.Context()
	page := school.Page{Limit: school.MaxLimit}

	user, _ := middleware.CurrentUser(c)
	out := dto.AdminOverview{User: user}

	var err error
	if out.Classes, err = h.repo.ListActiveClasses(ctx, page); err != nil {
		writeError(c, h.log, err)
		return
	}
	if out.Teachers, err = h.repo.ListActiveTeachers(ctx, page); err != nil {
		writeError(c, h.log, err)
		return
	}
	if out.Students, err = h.repo.ListStudents(ctx, page); err != nil {
		writeError(c, h.log, err)
		return
	}
	if out.Registrations, err = h.repo.ListRegistrations(ctx, page); err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *AdminHandler) StudentRegistrations(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	regs, err := h.repo.ListRegistrationsByStudent(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, regs)
}
