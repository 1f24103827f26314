package controllers

import (
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/repository"
	"github.com/yeremiapane/restaurant-api/requests"
	"github.com/yeremiapane/restaurant-api/responses"
	"github.com/yeremiapane/restaurant-api/services"
)

type MenuController = ResourceController[models.Menu, requests.CreateMenu, requests.UpdateMenu, responses.Menu]

func NewMenuController(db *gorm.DB) *MenuController {
	svc := services.NewMenuService(repository.New[models.Menu](db))
	return NewResourceController(svc, "menu", responses.NewMenu)
}
