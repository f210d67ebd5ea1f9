package transport

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alanyang/caller-hub/internal/metrics"
	assignmentsvc "github.com/alanyang/caller-hub/internal/service/assignment"
	callersvc "github.com/alanyang/caller-hub/internal/service/caller"
	employeesvc "github.com/alanyang/caller-hub/internal/service/employee"
	schedsvc "github.com/alanyang/caller-hub/internal/service/scheduler"

	assignmenthandler "github.com/alanyang/caller-hub/internal/transport/assignment"
	callerhandler "github.com/alanyang/caller-hub/internal/transport/caller"
	employeehandler "github.com/alanyang/caller-hub/internal/transport/employee"
	schedhandler "github.com/alanyang/caller-hub/internal/transport/scheduler"
)

func NewRouter(
	callerSvc *callersvc.Service,
	employeeSvc *employeesvc.Service,
	assignmentSvc *assignmentsvc.Service,
	sched *schedsvc.Scheduler,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())

	api := r.Group("/api")

	callerhandler.Register(api.Group("/callers"), callerSvc)
	employeehandler.Register(api.Group("/employees"), employeeSvc)
	assignmenthandler.Register(api.Group("/assignments"), assignmentSvc)
	schedhandler.Register(api.Group("/scheduler"), sched)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	return r
}
