package controllers

import (
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/repository"
	"github.com/yeremiapane/restaurant-api/requests"
	"github.com/yeremiapane/restaurant-api/responses"
	"github.com/yeremiapane/restaurant-api/services"
)

type TableController = ResourceController[models.Table, requests.CreateTable, requests.UpdateTable, responses.Table]

func NewTableController(db *gorm.DB) *TableController {
	svc := services.NewTableService(repository.New[models.Table](db))
	return NewResourceController(svc, "table", responses.NewTable)
}
