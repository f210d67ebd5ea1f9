package scheduler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	schedsvc "github.com/alanyang/caller-hub/internal/service/scheduler"
)

func Register(rg *gin.RouterGroup, sched *schedsvc.Scheduler) {
	rg.POST("/trigger/:job", triggerJob(sched))
	rg.GET("/status", status(sched))
}

// triggerJob runs the named job synchronously and reports its outcome as a
// {success, message} body — the same shape whether the body succeeded or not,
// since partial failure inside a run is normal.
func triggerJob(sched *schedsvc.Scheduler) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("job")

		if err := sched.TriggerNow(c.Request.Context(), name); err != nil {
			if errors.Is(err, schedsvc.ErrUnknownJob) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "job " + name + " completed"})
	}
}

func status(sched *schedsvc.Scheduler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, sched.Status())
	}
}
