package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"CareDesk/models"
	"CareDesk/services"
)

type PatientController struct {
	svc *services.PatientService
}

func NewPatientController(svc *services.PatientService) *PatientController {
	return &PatientController{svc: svc}
}

func (pc *PatientController) Register(r *gin.Engine) {
	patient := r.Group("patients")
	{
		patient.POST("/register", pc.RegisterPatient)
		patient.GET("/fetch/:patientId", pc.Fetch)
		patient.GET("/physicians", pc.Physicians)
	}
}

type RegisterPatientRequest struct {
	Name                   string    `json:"name" binding:"required,min=2,max=50"`
	Email                  string    `json:"email" binding:"required,email"`
	Phone                  string    `json:"phone" binding:"required,e164"`
	BirthDate              time.Time `json:"birthDate" binding:"required"`
	Gender                 string    `json:"gender" binding:"required,oneof=male female other"`
	Address                string    `json:"address" binding:"required,min=5,max=500"`
	Occupation             string    `json:"occupation" binding:"required,min=2,max=500"`
	EmergencyContactName   string    `json:"emergencyContactName" binding:"required,min=2,max=50"`
	EmergencyContactNumber string    `json:"emergencyContactNumber" binding:"required,e164"`
	PrimaryPhysician       string    `json:"primaryPhysician" binding:"omitempty,min=2"`
	InsuranceProvider      string    `json:"insuranceProvider" binding:"required,min=2,max=50"`
	InsurancePolicyNumber  string    `json:"insurancePolicyNumber" binding:"required,min=2,max=50"`
	Allergies              string    `json:"allergies"`
	CurrentMedication      string    `json:"currentMedication"`
	FamilyMedicalHistory   string    `json:"familyMedicalHistory"`
	PastMedicalHistory     string    `json:"pastMedicalHistory"`
	TreatmentConsent       bool      `json:"treatmentConsent"`
	DisclosureConsent      bool      `json:"disclosureConsent"`
	PrivacyConsent         bool      `json:"privacyConsent"`
}

/*
* Bind and validate the intake form
* Pass to the service, return the registered record
 */
func (pc *PatientController) RegisterPatient(c *gin.Context) {
	var req RegisterPatientRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, failedResponse(err))
		return
	}
	patient, err := pc.svc.Register(c.Request.Context(), services.RegisterPatientInput{
		Name:                   req.Name,
		Email:                  req.Email,
		Phone:                  req.Phone,
		BirthDate:              req.BirthDate,
		Gender:                 req.Gender,
		Address:                req.Address,
		Occupation:             req.Occupation,
		EmergencyContactName:   req.EmergencyContactName,
		EmergencyContactNumber: req.EmergencyContactNumber,
		PrimaryPhysician:       req.PrimaryPhysician,
		InsuranceProvider:      req.InsuranceProvider,
		InsurancePolicyNumber:  req.InsurancePolicyNumber,
		Allergies:              req.Allergies,
		CurrentMedication:      req.CurrentMedication,
		FamilyMedicalHistory:   req.FamilyMedicalHistory,
		PastMedicalHistory:     req.PastMedicalHistory,
		TreatmentConsent:       req.TreatmentConsent,
		DisclosureConsent:      req.DisclosureConsent,
		PrivacyConsent:         req.PrivacyConsent,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(patient))
}

func (pc *PatientController) Fetch(c *gin.Context) {
	patient, err := pc.svc.Get(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(patient))
}

// Physicians returns the bookable roster.
func (pc *PatientController) Physicians(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse(models.Physicians))
}
