package service

import (
	"github.com/MKhiriev/fit-tracker/internal/adapter"
	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/internal/store"
	"github.com/MKhiriev/fit-tracker/internal/utils"
	"github.com/MKhiriev/fit-tracker/internal/validators"
)

type ClientServices struct {
	Session    SessionService
	Meals      MealService
	Favorites  FavoriteService
	Water      WaterService
	Profile    ProfileService
	Account    AccountService
	RefreshJob RefreshJob
}

func NewClientServices(storages *store.ClientStorages, auth adapter.AuthAdapter, calories adapter.CalorieAdapter, logger *logger.Logger) *ClientServices {
	ids := utils.NewUUIDGenerator()
	validator := validators.NewUserInputValidator()
	session := NewSession(auth, calories, storages, validator, logger)

	return &ClientServices{
		Session:    session,
		Meals:      NewMeals(storages.Meals, ids, logger),
		Favorites:  NewFavorites(storages.Favorites, ids, logger),
		Water:      NewWater(storages.Water, logger),
		Profile:    NewProfile(calories, validator, logger),
		Account:    NewAccount(auth, validator, logger),
		RefreshJob: NewSessionRefreshJob(session, logger),
	}
}
