package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/attendance-tracker-api/internal/dto"
	"github.com/noah-isme/attendance-tracker-api/pkg/response"
)

// Root godoc
// @Summary Service banner
// @Tags System
// @Produce json
// @Success 200 {object} dto.RootResponse
// @Router / [get]
func Root(c *gin.Context) {
	response.JSON(c, http.StatusOK, dto.RootResponse{Message: "Attendance Tracker API", Status: "running"})
}
