package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleRefresh godoc
//
//	@Summary		Schedule a refresh
//	@Description	Asks the background refresher to pull records now. Returns immediately.
//	@Tags			refresh
//	@Produce		json
//	@Success		202	{object}	object
//	@Router			/refresh [post]
func (h *Handler) HandleRefresh(c *gin.Context) {
	h.refresher.Fire()
	c.JSON(http.StatusAccepted, gin.H{"message": "refresh scheduled"})
}

// HandleStatus godoc
//
//	@Summary		Refresh status
//	@Tags			refresh
//	@Produce		json
//	@Success		200	{object}	Status
//	@Router			/status [get]
func (h *Handler) HandleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Status())
}
