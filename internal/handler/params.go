package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/attendance-tracker-api/internal/models"
	appErrors "github.com/noah-isme/attendance-tracker-api/pkg/errors"
)

func pathID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrUnprocessable.Code, appErrors.ErrUnprocessable.Status, "invalid "+name+": must be an integer")
	}
	return id, nil
}

func malformedBody(err error) error {
	return appErrors.Wrap(err, appErrors.ErrUnprocessable.Code, appErrors.ErrUnprocessable.Status, "invalid payload")
}

// attendanceFilter reads subject_id, start_date and end_date. A subject_id of zero
// or below applies no subject filter.
func attendanceFilter(c *gin.Context) (models.AttendanceFilter, error) {
	var filter models.AttendanceFilter

	if raw := strings.TrimSpace(c.Query("subject_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, appErrors.Wrap(err, appErrors.ErrUnprocessable.Code, appErrors.ErrUnprocessable.Status, "invalid subject_id: must be an integer")
		}
		filter.SubjectID = id
	}

	var err error
	if filter.StartDate, err = queryDate(c, "start_date"); err != nil {
		return filter, err
	}
	if filter.EndDate, err = queryDate(c, "end_date"); err != nil {
		return filter, err
	}
	return filter, nil
}

func queryDate(c *gin.Context, key string) (*models.Date, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnprocessable.Code, appErrors.ErrUnprocessable.Status, "invalid "+key+": expected YYYY-MM-DD")
	}
	return &d, nil
}
