package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ShowLanding serves the rendered landing page.
func (a *API) ShowLanding(c *gin.Context) {
	body, etag, err := a.renderedLanding()
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to render page")
		return
	}

	c.Header("ETag", etag)
	c.Header("Cache-Control", "public, max-age=300")

	if etagMatches(c.GetHeader("If-None-Match"), etag) {
		c.Status(http.StatusNotModified)
		return
	}

	if c.Request.Method == http.MethodHead {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Header("Content-Length", strconv.Itoa(len(body)))
		c.Status(http.StatusOK)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

// GetSections lists the landing page sections in display order.
func (a *API) GetSections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": a.landing.Manifest()})
}
