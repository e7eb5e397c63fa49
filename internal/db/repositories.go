package db

import (
	"github.com/terraincognita07/fitlog/internal/models"
	"gorm.io/gorm"
)

type Repositories struct {
	Users    *Collection[models.User]
	Weights  *Collection[models.WeightEntry]
	Foods    *Collection[models.FoodLog]
	Workouts *Collection[models.WorkoutLog]
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewCollection[models.User](database, CollectionUsers),
		Weights:  NewCollection[models.WeightEntry](database, CollectionWeight),
		Foods:    NewCollection[models.FoodLog](database, CollectionFood),
		Workouts: NewCollection[models.WorkoutLog](database, CollectionWorkout),
	}
}
