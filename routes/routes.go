package routes

import (
	"github.com/gin-gonic/gin"

	"CareDesk/controllers"
)

func Routes(r *gin.Engine, appointments *controllers.AppointmentController, patients *controllers.PatientController) {
	patients.Register(r)
	appointments.Register(r)
}
