package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/dance-school/internal/domain/school"
	"github.com/BruksfildServices01/dance-school/internal/dto"
	"github.com/BruksfildServices01/dance-school/internal/httperr"
	"github.com/BruksfildServices01/dance-school/internal/httpresp"
	"github.com/BruksfildServices01/dance-school/internal/models"
)

// CatalogHandler serves the public classes, teachers and schedule.
type CatalogHandler struct {
	repo school.Repository
	log  logrus.FieldLogger
}

func NewCatalogHandler(repo school.Repository, log logrus.FieldLogger) *CatalogHandler {
	return &CatalogHandler{repo: repo, log: log}
}

// ======================================================
// CLASSES
// ======================================================

func (h *CatalogHandler) ListClasses(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	classes, err := h.repo.ListActiveClasses(c.Request.Context(), page)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, classes)
}

func (h *CatalogHandler) GetClass(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	class, err := h.repo.GetClass(c.Request.Context(), id)
	if errors.Is(err, school.ErrNotFound) {
		httperr.NotFound(c, "class_not_found", "Dance class not found.")
		return
	}
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, class)
}

func (h *CatalogHandler) ClassSchedule(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := h.repo.GetClass(ctx, id); err != nil {
		if errors.Is(err, school.ErrNotFound) {
			httperr.NotFound(c, "class_not_found", "Dance class not found.")
			return
		}
		writeError(c, h.log, err)
		return
	}

	h.writeSchedule(c, &id)
}

// ======================================================
// TEACHERS
// ======================================================

func (h *CatalogHandler) ListTeachers(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	teachers, err := h.repo.ListActiveTeachers(c.Request.Context(), page)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, teachers)
}

func (h *CatalogHandler) GetTeacher(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	teacher, err := h.repo.GetTeacher(c.Request.Context(), id)
	if errors.Is(err, school.ErrNotFound) {
		httperr.NotFound(c, "teacher_not_found", "Teacher not found.")
		return
	}
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, teacher)
}

// ======================================================
// SCHEDULE
// ======================================================

type scheduleQuery struct {
	DanceClassID *uint `form:"dance_class_id" binding:"omitempty,gt=0"`
}

func (h *CatalogHandler) ListSchedule(c *gin.Context) {
	var q scheduleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.Invalid(c, err)
		return
	}
	h.writeSchedule(c, q.DanceClassID)
}

func (h *CatalogHandler) writeSchedule(c *gin.Context, classID *uint) {
	ctx := c.Request.Context()

	slots, err := h.repo.ListSchedule(ctx, classID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	names := newNameCache(h.repo)
	entries := make([]dto.ScheduleEntry, 0, len(slots))
	for _, s := range slots {
		className, err := names.class(ctx, s.DanceClassID)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		teacherName, err := names.teacher(ctx, s.TeacherID)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		entries = append(entries, dto.NewScheduleEntry(s, className, teacherName))
	}

	httpresp.List(c, entries)
}

// nameCache resolves schedule references once per request. Dangling
// references resolve to "".
type nameCache struct {
	repo     school.Repository
	classes  map[uint]string
	teachers map[uint]string
}

func newNameCache(repo school.Repository) *nameCache {
	return &nameCache{
		repo:     repo,
		classes:  map[uint]string{},
		teachers: map[uint]string{},
	}
}

func (n *nameCache) class(ctx context.Context, id uint) (string, error) {
	if name, ok := n.classes[id]; ok {
		return name, nil
	}
	cls, err := n.repo.GetClass(ctx, id)
	name, err := nameOrEmpty(cls, err, func(v *models.DanceClass) string { return v.Name })
	if err != nil {
		return "", err
	}
	n.classes[id] = name
	return name, nil
}

func (n *nameCache) teacher(ctx context.Context, id uint) (string, error) {
	if name, ok := n.teachers[id]; ok {
		return name, nil
	}
	t, err := n.repo.GetTeacher(ctx, id)
	name, err := nameOrEmpty(t, err, func(v *models.Teacher) string { return v.Name })
	if err != nil {
		return "", err
	}
	n.teachers[id] = name
	return name, nil
}

func nameOrEmpty[T any](v *T, err error, name func(*T) string) (string, error) {
	if errors.Is(err, school.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return name(v), nil
}
