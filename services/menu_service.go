package services

import (
	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/requests"
)

type MenuService = ResourceService[models.Menu, requests.CreateMenu, requests.UpdateMenu]

func NewMenuService(store Store[models.Menu]) *MenuService {
	return NewResourceService[models.Menu, requests.CreateMenu, requests.UpdateMenu](store)
}
