package handlers

import (
	"net/http"

	"salonbook/catalog"

	"github.com/gin-gonic/gin"
)

// ListServicesHandler returns the static service catalog.
func ListServicesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "services": catalog.Services()})
}

// ListStaffHandler returns the roster with per-staff hours and tags.
func ListStaffHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "staff": catalog.Staff()})
}
