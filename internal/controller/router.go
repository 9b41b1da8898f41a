package controller

import (
	"newsfeed/internal/feed"
	"newsfeed/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RouterConfig carries everything the route tree needs to wire its
// controllers, mirroring the teacher's router-assembly shape.
type RouterConfig struct {
	BasePath        string
	Logger          *logrus.Logger
	Dispatcher      *feed.EventDispatcherService
	EventStore      *feed.EventStore
	SubscriptionSvc *feed.SubscriptionService
	IDSpec          *feed.NewsfeedIDSpecification
}

// SetupRoutes builds the full gin engine: global middleware, then the
// newsfeed route tree under BasePath.
func SetupRoutes(cfg *RouterConfig) *gin.Engine {
	engine := gin.New()
	setupGlobalMiddleware(engine, cfg.Logger)

	root := engine.Group(cfg.BasePath)

	eventCtrl := NewEventController(cfg.Dispatcher, cfg.EventStore)
	subCtrl := NewSubscriptionController(cfg.SubscriptionSvc, cfg.IDSpec)

	setupStatusRoutes(root)
	setupEventRoutes(root, eventCtrl)
	setupSubscriptionRoutes(root, subCtrl)

	return engine
}

func setupGlobalMiddleware(engine *gin.Engine, logger *logrus.Logger) {
	engine.Use(middleware.RecoveryMiddleware())
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.LoggerMiddleware(logger))
}

func setupStatusRoutes(root *gin.RouterGroup) {
	root.GET("/status/", Status)
}

func setupEventRoutes(root *gin.RouterGroup, ctrl *EventController) {
	events := root.Group("/newsfeed/:nf/events")
	events.GET("/", ctrl.List)
	events.POST("/", ctrl.Post)
	events.DELETE("/:eid/", ctrl.Delete)
}

func setupSubscriptionRoutes(root *gin.RouterGroup, ctrl *SubscriptionController) {
	subscriptions := root.Group("/newsfeed/:nf/subscriptions")
	subscriptions.GET("/", ctrl.ListOutgoing)
	subscriptions.POST("/", ctrl.Post)
	subscriptions.DELETE("/:sid/", ctrl.Delete)

	root.GET("/newsfeed/:nf/subscribers/subscriptions/", ctrl.ListIncoming)
}
