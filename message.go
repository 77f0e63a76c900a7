package ftracker

import "fmt"

const messageTemplate = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// InfoMessage is the computed summary of one workout.
type InfoMessage struct {
	TrainingType  string  `json:"training_type"`
	DurationHours float64 `json:"duration_h"`
	DistanceKM    float64 `json:"distance_km"`
	SpeedKMH      float64 `json:"mean_speed_kmh"`
	CaloriesKCal  float64 `json:"calories_kcal"`
}

// Summarize computes all derived metrics of a workout in one pass.
func Summarize(t Training) InfoMessage {
	return InfoMessage{
		TrainingType:  t.Label(),
		DurationHours: t.DurationHours(),
		DistanceKM:    t.Distance(),
		SpeedKMH:      t.MeanSpeed(),
		CaloriesKCal:  t.SpentCalories(),
	}
}

// Message renders the summary with every numeric field at three decimals.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(messageTemplate,
		m.TrainingType,
		m.DurationHours,
		m.DistanceKM,
		m.SpeedKMH,
		m.CaloriesKCal,
	)
}
