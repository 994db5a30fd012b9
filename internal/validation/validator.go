// Package validation provides custom validators for the application
package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"salonbook/internal/models"
	"salonbook/internal/schedule"
)

// Initialize registers all custom validators
func Initialize() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("timeofday", validateTimeOfDay); err != nil {
			panic(err)
		}
		if err := v.RegisterValidation("slotduration", validateSlotDuration); err != nil {
			panic(err)
		}
	}
}

// validateTimeOfDay checks for a HH:MM or HH:MM:SS civil time of day
func validateTimeOfDay(fl validator.FieldLevel) bool {
	_, _, _, err := schedule.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

// validateSlotDuration checks the duration is one of the permitted lengths
func validateSlotDuration(fl validator.FieldLevel) bool {
	value := int(fl.Field().Int())
	for _, d := range models.SlotDurations {
		if value == d {
			return true
		}
	}
	return false
}
