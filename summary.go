package ftracker

import "fmt"

const message = "Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f."

// Summary is the computed result of a single workout
type Summary struct {
	Activity string  `json:"activity"`
	Duration float64 `json:"duration"`
	Distance float64 `json:"distance"`
	Speed    float64 `json:"speed"`
	Calories float64 `json:"calories"`
}

// Render formats the workout metrics as a single human-readable line
func Render(activity string, duration, distance, speed, calories float64) string {
	return fmt.Sprintf(message, activity, duration, distance, speed, calories)
}

func (s *Summary) String() string {
	return Render(s.Activity, s.Duration, s.Distance, s.Speed, s.Calories)
}

// Summarize computes distance, mean speed and calories for the workout
func Summarize(w Workout) (*Summary, error) {
	speed, err := MeanSpeed(w)
	if err != nil {
		return nil, err
	}
	cal, err := Calories(w)
	if err != nil {
		return nil, err
	}
	return &Summary{
		Activity: Name(w),
		Duration: w.reading().Duration,
		Distance: Distance(w),
		Speed:    speed,
		Calories: cal,
	}, nil
}
