package models

import "time"

type Patient struct {
	ID                     string    `json:"id" bson:"id"`
	Name                   string    `json:"name" bson:"name"`
	Email                  string    `json:"email" bson:"email"`
	Phone                  string    `json:"phone" bson:"phone"`
	BirthDate              time.Time `json:"birthDate" bson:"birthDate"`
	Gender                 string    `json:"gender" bson:"gender"`
	Address                string    `json:"address" bson:"address"`
	Occupation             string    `json:"occupation" bson:"occupation"`
	EmergencyContactName   string    `json:"emergencyContactName" bson:"emergencyContactName"`
	EmergencyContactNumber string    `json:"emergencyContactNumber" bson:"emergencyContactNumber"`
	PrimaryPhysician       string    `json:"primaryPhysician" bson:"primaryPhysician"`
	InsuranceProvider      string    `json:"insuranceProvider" bson:"insuranceProvider"`
	InsurancePolicyNumber  string    `json:"insurancePolicyNumber" bson:"insurancePolicyNumber"`
	Allergies              string    `json:"allergies,omitempty" bson:"allergies,omitempty"`
	CurrentMedication      string    `json:"currentMedication,omitempty" bson:"currentMedication,omitempty"`
	FamilyMedicalHistory   string    `json:"familyMedicalHistory,omitempty" bson:"familyMedicalHistory,omitempty"`
	PastMedicalHistory     string    `json:"pastMedicalHistory,omitempty" bson:"pastMedicalHistory,omitempty"`
	TreatmentConsent       bool      `json:"treatmentConsent" bson:"treatmentConsent"`
	DisclosureConsent      bool      `json:"disclosureConsent" bson:"disclosureConsent"`
	PrivacyConsent         bool      `json:"privacyConsent" bson:"privacyConsent"`
	CreatedAt              time.Time `json:"createdAt" bson:"createdAt"`
}
