package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/dance-school/internal/dto"
	"github.com/BruksfildServices01/dance-school/internal/httperr"
	"github.com/BruksfildServices01/dance-school/internal/httpresp"
	"github.com/BruksfildServices01/dance-school/internal/usecase/enrollment"
)

type StudentHandler struct {
	create   *enrollment.CreateStudent
	register *enrollment.RegisterStudent
	log      logrus.FieldLogger
}

func NewStudentHandler(
	create *enrollment.CreateStudent,
	register *enrollment.RegisterStudent,
	log logrus.FieldLogger,
) *StudentHandler {
	return &StudentHandler{create: create, register: register, log: log}
}

// --------- Requests ---------

type CreateStudentRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"required,email,max=100"`
	Phone string `json:"phone" binding:"max=20"`
	Level string `json:"level" binding:"max=50"`
}

type RegistrationRequest struct {
	Name         string `form:"name" json:"name" binding:"required,max=100"`
	Email        string `form:"email" json:"email" binding:"required,email,max=100"`
	Phone        string `form:"phone" json:"phone" binding:"required,max=20"`
	Level        string `form:"level" json:"level" binding:"required,max=50"`
	DanceClassID uint   `form:"dance_class_id" json:"dance_class_id" binding:"required"`
}

// --------- Handlers ---------

func (h *StudentHandler) Create(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	student, err := h.create.Execute(c.Request.Context(), enrollment.CreateStudentInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Level: req.Level,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, student)
}

// Register accepts the public sign-up form as form data or JSON.
func (h *StudentHandler) Register(c *gin.Context) {
	var req RegistrationRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	out, err := h.register.Execute(c.Request.Context(), enrollment.RegisterStudentInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Level:        req.Level,
		DanceClassID: req.DanceClassID,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, dto.RegistrationResult{
		Student:      out.Student,
		Registration: out.Registration,
	})
}
