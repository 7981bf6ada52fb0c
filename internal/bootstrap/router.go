package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/erp-civi/erp-backend/internal/api/http"
	apimiddleware "github.com/erp-civi/erp-backend/internal/api/http/middleware"
	authhttp "github.com/erp-civi/erp-backend/internal/auth/http"
	authmiddleware "github.com/erp-civi/erp-backend/internal/auth/middleware"
	authservice "github.com/erp-civi/erp-backend/internal/auth/service"
	billinghttp "github.com/erp-civi/erp-backend/internal/billing/http"
	billingrepo "github.com/erp-civi/erp-backend/internal/billing/repository"
	billingservice "github.com/erp-civi/erp-backend/internal/billing/service"
	boqhttp "github.com/erp-civi/erp-backend/internal/boq/http"
	boqrepo "github.com/erp-civi/erp-backend/internal/boq/repository"
	boqservice "github.com/erp-civi/erp-backend/internal/boq/service"
	"github.com/erp-civi/erp-backend/internal/clients"
	"github.com/erp-civi/erp-backend/internal/dailyreports"
	dashboardhttp "github.com/erp-civi/erp-backend/internal/dashboard/http"
	dashboardservice "github.com/erp-civi/erp-backend/internal/dashboard/service"
	"github.com/erp-civi/erp-backend/internal/equipment"
	"github.com/erp-civi/erp-backend/internal/inventory"
	invoicehttp "github.com/erp-civi/erp-backend/internal/invoices/http"
	invoicerepo "github.com/erp-civi/erp-backend/internal/invoices/repository"
	invoiceservice "github.com/erp-civi/erp-backend/internal/invoices/service"
	projecthttp "github.com/erp-civi/erp-backend/internal/projects/http"
	projectrepo "github.com/erp-civi/erp-backend/internal/projects/repository"
	"github.com/erp-civi/erp-backend/internal/storage"
	"github.com/erp-civi/erp-backend/internal/vendors"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Redis          *redis.Client
	Store          *storage.Store
	Session        *authservice.Session
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// BuildRouter wires every feature module onto a single gin engine. Auth
// routes stay open; everything else under /api/v1 requires a logged-in user,
// with per-route permission gates on mutations.
func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(apimiddleware.RequestID())

	corsCfg := cors.DefaultConfig()
	if len(dep.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = dep.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Request-Id")
	r.Use(cors.New(corsCfg))

	if dep.RateLimitRPS > 0 {
		r.Use(apimiddleware.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))
	}

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	authhttp.NewHandler(dep.Session).Register(api.Group("/auth"))

	projectRepo := projectrepo.New(dep.Store)
	billRepo := billingrepo.New(dep.Store)
	invRepo := invoicerepo.New(dep.Store)
	clientRepo := clients.NewRepo(dep.Store)

	protected := api.Group("")
	protected.Use(authmiddleware.RequireLogin(dep.Session))

	projecthttp.NewHandler(projectRepo).Register(protected.Group("/projects"), dep.Session)
	clients.Register(protected.Group("/clients"), clientRepo, dep.Session)
	vendors.Register(protected.Group("/vendors"), vendors.NewRepo(dep.Store), dep.Session)
	boqhttp.NewHandler(boqservice.New(boqrepo.New(dep.Store))).Register(protected.Group("/boq"), dep.Session)
	billinghttp.NewHandler(billingservice.New(billRepo)).Register(protected.Group("/bills"), dep.Session)
	invoicehttp.NewHandler(invoiceservice.New(invRepo)).Register(protected.Group("/invoices"), dep.Session)
	inventory.Register(protected.Group("/inventory"), inventory.NewRepo(dep.Store), dep.Session)
	equipment.Register(protected.Group("/equipment"), equipment.NewRepo(dep.Store), dep.Session)
	dailyreports.Register(protected.Group("/daily-reports"), dailyreports.NewRepo(dep.Store))

	dashSvc := dashboardservice.New(projectRepo, billRepo, invRepo, clientRepo)
	dashboardhttp.NewHandler(dashSvc, dep.Store).Register(protected.Group("/dashboard"))

	return r
}
