package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gitlab.com/nunet/opencompute-monitor/inventory"
	"gitlab.com/nunet/opencompute-monitor/models"
)

type hardwareQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=reserved available"`
}

// latest writes a 503 problem and returns nil when there is no snapshot.
func (h *Handler) latest(c *gin.Context) *models.Snapshot {
	snapshot, err := h.store.Latest()
	if snapshot == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, NewUnavailableProblem(c.Request.URL.Path, err))
		return nil
	}
	return snapshot
}

// HandleHardware godoc
//
//	@Summary		Per-node hardware overview
//	@Description	Returns one row per miner with its GPU, CPU, RAM and disk and its allocation status
//	@Tags			hardware
//	@Produce		json
//	@Param			status	query		string	false	"filter by status"	Enums(reserved, available)
//	@Success		200		{array}		models.NormalizedRow
//	@Failure		400		{object}	ProblemDetail
//	@Failure		503		{object}	ProblemDetail
//	@Router			/hardware [get]
func (h *Handler) HandleHardware(c *gin.Context) {
	var query hardwareQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, NewValidationProblem(c.Request.URL.Path, err))
		return
	}

	snapshot := h.latest(c)
	if snapshot == nil {
		return
	}

	c.JSON(http.StatusOK, inventory.FilterByStatus(snapshot.Rows, query.Status))
}

// HandleAllocated godoc
//
//	@Summary		Allocated hotkeys
//	@Description	Returns the hotkeys validators report as allocated, deduplicated and sorted
//	@Tags			hardware
//	@Produce		json
//	@Success		200	{array}		string
//	@Failure		503	{object}	ProblemDetail
//	@Router			/allocated [get]
func (h *Handler) HandleAllocated(c *gin.Context) {
	snapshot := h.latest(c)
	if snapshot == nil {
		return
	}
	c.JSON(http.StatusOK, snapshot.Allocated)
}

// HandleSnapshot godoc
//
//	@Summary		Full snapshot
//	@Tags			hardware
//	@Produce		json
//	@Success		200	{object}	models.Snapshot
//	@Failure		503	{object}	ProblemDetail
//	@Router			/snapshot [get]
func (h *Handler) HandleSnapshot(c *gin.Context) {
	snapshot := h.latest(c)
	if snapshot == nil {
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
