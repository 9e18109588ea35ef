package controller

import (
	"github.com/ougirez/lwc/internal/service/auth"
	"github.com/ougirez/lwc/internal/service/dashboard"
	"github.com/ougirez/lwc/internal/service/desserts"
	"github.com/ougirez/lwc/internal/service/places"
	"github.com/ougirez/lwc/internal/service/recommend"
	"github.com/ougirez/lwc/internal/service/stats"
)

type Deps struct {
	Places    *places.Service
	Desserts  *desserts.Service
	Stats     *stats.Engine
	Recommend *recommend.Service
	Dashboard *dashboard.Service
	Auth      *auth.Service
}

type Controller struct {
	places    *places.Service
	desserts  *desserts.Service
	stats     *stats.Engine
	recommend *recommend.Service
	dashboard *dashboard.Service
	auth      *auth.Service
}

func NewController(deps Deps) *Controller {
	return &Controller{
		places:    deps.Places,
		desserts:  deps.Desserts,
		stats:     deps.Stats,
		recommend: deps.Recommend,
		dashboard: deps.Dashboard,
		auth:      deps.Auth,
	}
}
