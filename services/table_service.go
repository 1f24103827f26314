package services

import (
	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/requests"
)

type TableService = ResourceService[models.Table, requests.CreateTable, requests.UpdateTable]

func NewTableService(store Store[models.Table]) *TableService {
	return NewResourceService[models.Table, requests.CreateTable, requests.UpdateTable](store)
}
