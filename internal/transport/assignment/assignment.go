package assignment

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainassignment "github.com/alanyang/caller-hub/internal/domain/assignment"
	assignmentsvc "github.com/alanyang/caller-hub/internal/service/assignment"
)

func Register(rg *gin.RouterGroup, svc *assignmentsvc.Service) {
	rg.POST("/", assignManual(svc))
	rg.GET("/log", listLog(svc))
}

type assignReq struct {
	CallerIDs  []uuid.UUID `json:"caller_ids" binding:"required,min=1"`
	EmployeeID uuid.UUID   `json:"employee_id" binding:"required"`
}

// assignManual assigns a list of callers to one employee on behalf of the
// admin identified by X-Actor-ID. Partial failure is reported per caller, not
// as an all-or-nothing error.
func assignManual(svc *assignmentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req assignReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		actorID, err := uuid.Parse(c.GetHeader("X-Actor-ID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid X-Actor-ID header"})
			return
		}

		summary := svc.AssignManual(c.Request.Context(), req.CallerIDs, req.EmployeeID, actorID)
		c.JSON(http.StatusOK, summary)
	}
}

func listLog(svc *assignmentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filters domainassignment.LogFilters

		if v := c.Query("caller_id"); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid caller_id"})
				return
			}
			filters.CallerID = &id
		}
		if v := c.Query("employee_id"); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee_id"})
				return
			}
			filters.EmployeeID = &id
		}
		if v := c.Query("method"); v != "" {
			m := domainassignment.Method(v)
			if !m.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid method"})
				return
			}
			filters.Method = &m
		}

		entries, err := svc.ListLog(c.Request.Context(), filters)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if entries == nil {
			entries = []domainassignment.LogEntry{}
		}
		c.JSON(http.StatusOK, entries)
	}
}
