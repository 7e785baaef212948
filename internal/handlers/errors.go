package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/dance-school/internal/domain/school"
	"github.com/BruksfildServices01/dance-school/internal/httperr"
	"github.com/BruksfildServices01/dance-school/internal/middleware"
)

// businessStatus maps use-case rule codes to HTTP statuses. Unlisted codes
// are 400.
var businessStatus = map[string]int{
	"invalid_credentials": http.StatusUnauthorized,
	"class_not_found":     http.StatusNotFound,
}

var businessMessage = map[string]string{
	"email_already_registered": "Email already registered.",
	"invalid_email_domain":     "The email domain does not look valid.",
	"password_too_long":        "Password must be at most 72 bytes.",
	"invalid_credentials":      "Incorrect email or password.",
	"class_not_found":          "Dance class not found.",
	"news_empty":               "Title and content are required.",
}

// writeError renders err and logs anything unexpected.
func writeError(c *gin.Context, log logrus.FieldLogger, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		status, found := businessStatus[code]
		if !found {
			status = http.StatusBadRequest
		}
		msg := businessMessage[code]
		if msg == "" {
			msg = code
		}
		if status == http.StatusUnauthorized {
			httperr.Unauthorized(c, code, msg)
			return
		}
		httperr.Write(c, status, code, msg)
		return
	}

	if errors.Is(err, school.ErrNotFound) {
		httperr.NotFound(c, "not_found", "Not found.")
		return
	}

	log.WithError(err).
		WithField("request_id", c.GetString(middleware.ContextRequestID)).
		WithField("path", c.FullPath()).
		Error("request failed")
	httperr.Internal(c, "internal_error", "Internal server error.")
}

type idParam struct {
	ID uint `uri:"id" binding:"required"`
}

func bindID(c *gin.Context) (uint, bool) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		httperr.Invalid(c, err)
		return 0, false
	}
	return p.ID, true
}

type pageQuery struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=100" binding:"min=0,max=1000"`
}

func bindPage(c *gin.Context) (school.Page, bool) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.Invalid(c, err)
		return school.Page{}, false
	}
	return school.Page{Skip: q.Skip, Limit: q.Limit}, true
}
