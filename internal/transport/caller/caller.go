package caller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainassignment "github.com/alanyang/caller-hub/internal/domain/assignment"
	domaincaller "github.com/alanyang/caller-hub/internal/domain/caller"
	callersvc "github.com/alanyang/caller-hub/internal/service/caller"
)

func Register(rg *gin.RouterGroup, svc *callersvc.Service) {
	rg.POST("/", createCaller(svc))
	rg.POST("/import", importCallers(svc))
	rg.GET("/", listCallers(svc))
	rg.GET("/:id", getCaller(svc))
	rg.POST("/:id/complete", completeCaller(svc))
	rg.POST("/:id/unassign", unassignCaller(svc))
	rg.DELETE("/:id", deleteCaller(svc))
}

type createReq struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

func createCaller(svc *callersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := svc.Create(c.Request.Context(), req.Name, req.Email, req.Phone)
		if err != nil {
			if errors.Is(err, domaincaller.ErrDuplicateContact) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// importCallers accepts a CSV body (name,email,phone per row) and returns a
// per-row summary tagged with the new batch id.
func importCallers(svc *callersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := svc.ImportCSV(c.Request.Context(), c.Request.Body)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func listCallers(svc *callersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filters domaincaller.ListFilters

		if v := c.Query("status"); v != "" {
			s := domaincaller.Status(v)
			if !s.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
				return
			}
			filters.Status = &s
		}
		if v := c.Query("assigned_to"); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assigned_to"})
				return
			}
			filters.AssignedTo = &id
		}
		if v := c.Query("batch_id"); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid batch_id"})
				return
			}
			filters.BatchID = &id
		}
		if c.Query("unassigned") == "true" {
			filters.Unassigned = true
		}

		callers, err := svc.List(c.Request.Context(), filters)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if callers == nil {
			callers = []domaincaller.Caller{}
		}
		c.JSON(http.StatusOK, callers)
	}
}

func getCaller(svc *callersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		caller, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, caller)
	}
}

func completeCaller(svc *callersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := svc.Complete(c.Request.Context(), id); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "completed"})
	}
}

func unassignCaller(svc *callersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := svc.Unassign(c.Request.Context(), id); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "unassigned"})
	}
}

func deleteCaller(svc *callersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := svc.Delete(c.Request.Context(), id); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

func statusFor(err error) int {
	if errors.Is(err, domainassignment.ErrCallerNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
