package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleInstances godoc
//
//	@Summary		Instance summary
//	@Description	Number of nodes per (GPU model, GPU count) pair
//	@Tags			summary
//	@Produce		json
//	@Success		200	{array}		models.InstanceEntry
//	@Failure		503	{object}	ProblemDetail
//	@Router			/summary/instances [get]
func (h *Handler) HandleInstances(c *gin.Context) {
	snapshot := h.latest(c)
	if snapshot == nil {
		return
	}
	c.JSON(http.StatusOK, snapshot.Instances)
}

// HandleTotals godoc
//
//	@Summary		Total GPU counts
//	@Description	Sum of GPUs per model across all nodes
//	@Tags			summary
//	@Produce		json
//	@Success		200	{array}		models.TotalEntry
//	@Failure		503	{object}	ProblemDetail
//	@Router			/summary/totals [get]
func (h *Handler) HandleTotals(c *gin.Context) {
	snapshot := h.latest(c)
	if snapshot == nil {
		return
	}
	c.JSON(http.StatusOK, snapshot.Totals)
}
