package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"CareDesk/models"
	"CareDesk/services"
)

type AppointmentController struct {
	svc *services.AppointmentService
}

func NewAppointmentController(svc *services.AppointmentService) *AppointmentController {
	return &AppointmentController{svc: svc}
}

func (ac *AppointmentController) Register(r *gin.Engine) {
	appointment := r.Group("appointments")
	{
		appointment.POST("/create", ac.Create)
		appointment.GET("/fetch/:appointmentId", ac.Fetch)
		appointment.GET("/recent", ac.Recent)
		appointment.PATCH("/update/:appointmentId", ac.Update)
	}
}

type CreateAppointmentRequest struct {
	PatientID        string    `json:"patientId" binding:"required"`
	PrimaryPhysician string    `json:"primaryPhysician" binding:"required,min=2"`
	Schedule         time.Time `json:"schedule" binding:"required"`
	Reason           string    `json:"reason" binding:"required,min=2,max=500"`
	Note             string    `json:"note" binding:"omitempty,max=500"`
}

/*
* Bind the booking request
* Pass to the service, return the persisted record
 */
func (ac *AppointmentController) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failedResponse(err))
		return
	}
	appointment, err := ac.svc.Create(c.Request.Context(), services.CreateAppointmentInput{
		PatientID:        req.PatientID,
		PrimaryPhysician: req.PrimaryPhysician,
		Schedule:         req.Schedule,
		Reason:           req.Reason,
		Note:             req.Note,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(appointment))
}

func (ac *AppointmentController) Fetch(c *gin.Context) {
	appointment, err := ac.svc.Get(c.Request.Context(), c.Param("appointmentId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(appointment))
}

type UpdateAppointmentRequest struct {
	PatientID          string                   `json:"patientId" binding:"required"`
	Type               models.TransitionType    `json:"type" binding:"required,oneof=schedule cancel"`
	Status             models.AppointmentStatus `json:"status" binding:"omitempty,oneof=pending scheduled cancelled"`
	Schedule           time.Time                `json:"schedule"`
	CancellationReason string                   `json:"cancellationReason" binding:"omitempty,max=500"`
}

/*
* Bind the patch and the declared transition type
* The service validates against the state machine and notifies the patient
 */
func (ac *AppointmentController) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failedResponse(err))
		return
	}
	appointment, err := ac.svc.Update(c.Request.Context(), c.Param("appointmentId"), req.PatientID, models.AppointmentPatch{
		Status:             req.Status,
		Schedule:           req.Schedule,
		CancellationReason: req.CancellationReason,
	}, req.Type)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(appointment))
}

/*
* Admin dashboard listing: recent page plus per-status counts
 */
func (ac *AppointmentController) Recent(c *gin.Context) {
	summary, err := ac.svc.ListRecent(c.Request.Context(), 0)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(summary))
}
