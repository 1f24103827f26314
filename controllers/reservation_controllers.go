package controllers

import (
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/repository"
	"github.com/yeremiapane/restaurant-api/requests"
	"github.com/yeremiapane/restaurant-api/responses"
	"github.com/yeremiapane/restaurant-api/services"
)

type ReservationController = ResourceController[models.Reservation, requests.CreateReservation, requests.UpdateReservation, responses.Reservation]

func NewReservationController(db *gorm.DB) *ReservationController {
	svc := services.NewReservationService(
		repository.New[models.Reservation](db),
		repository.New[models.Table](db),
	)
	return NewResourceController(svc, "reservation", responses.NewReservation)
}
