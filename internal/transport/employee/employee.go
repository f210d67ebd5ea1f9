package employee

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainassignment "github.com/alanyang/caller-hub/internal/domain/assignment"
	domainemployee "github.com/alanyang/caller-hub/internal/domain/employee"
	employeesvc "github.com/alanyang/caller-hub/internal/service/employee"
)

func Register(rg *gin.RouterGroup, svc *employeesvc.Service) {
	rg.POST("/", createEmployee(svc))
	rg.GET("/", listEmployees(svc))
	rg.GET("/:id", getEmployee(svc))
	rg.DELETE("/:id", deleteEmployee(svc))
}

type createReq struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

func createEmployee(svc *employeesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		role := domainemployee.Role(req.Role)
		if !role.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
			return
		}

		created, err := svc.Create(c.Request.Context(), req.Name, req.Email, req.Phone, role)
		if err != nil {
			if errors.Is(err, domainemployee.ErrDuplicateEmail) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func listEmployees(svc *employeesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filters domainemployee.ListFilters

		if v := c.Query("role"); v != "" {
			r := domainemployee.Role(v)
			if !r.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
				return
			}
			filters.Role = &r
		}

		loads, err := svc.List(c.Request.Context(), filters)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if loads == nil {
			loads = []domainemployee.Load{}
		}
		c.JSON(http.StatusOK, loads)
	}
}

func getEmployee(svc *employeesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		e, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domainassignment.ErrEmployeeNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, e)
	}
}

func deleteEmployee(svc *employeesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := svc.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, domainassignment.ErrEmployeeNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}
