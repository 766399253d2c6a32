package routes

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"hotel-admin/models"
)

var registerOnce sync.Once

// RegisterValidators adds the state enums to gin's validator so request structs can use
// `binding:"roomstate"` and `binding:"bookingstate"`.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		if err = v.RegisterValidation("roomstate", oneOf(models.RoomStates)); err != nil {
			return
		}
		err = v.RegisterValidation("bookingstate", oneOf(models.BookingStates))
	})
	return err
}

func oneOf(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return models.IsOneOf(fl.Field().String(), allowed)
	}
}
