package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"CareDesk/cache"
	"CareDesk/models"
	"CareDesk/store"
)

// PatientService registers and fetches patient intake records. It also acts
// as the phone directory for the SMS gateway.
type PatientService struct {
	store store.RecordStore
	cache cache.Cache
	now   func() time.Time
	newID func() string
}

func NewPatientService(rs store.RecordStore, c cache.Cache) *PatientService {
	return &PatientService{
		store: rs,
		cache: c,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

type RegisterPatientInput struct {
	Name                   string
	Email                  string
	Phone                  string
	BirthDate              time.Time
	Gender                 string
	Address                string
	Occupation             string
	EmergencyContactName   string
	EmergencyContactNumber string
	PrimaryPhysician       string
	InsuranceProvider      string
	InsurancePolicyNumber  string
	Allergies              string
	CurrentMedication      string
	FamilyMedicalHistory   string
	PastMedicalHistory     string
	TreatmentConsent       bool
	DisclosureConsent      bool
	PrivacyConsent         bool
}

/*
* Registration requires every consent flag to be true
* Assign id and createdAt, persist, cache the new record
 */
func (s *PatientService) Register(ctx context.Context, in RegisterPatientInput) (models.Patient, error) {
	if !in.TreatmentConsent || !in.DisclosureConsent || !in.PrivacyConsent {
		return models.Patient{}, &models.ValidationError{Guard: "consent-required", Reason: "all consent flags must be accepted before registration"}
	}
	if in.PrimaryPhysician != "" && !models.KnownPhysician(in.PrimaryPhysician) {
		return models.Patient{}, &models.ValidationError{Guard: "unknown-physician", Reason: fmt.Sprintf("%q is not on the physician roster", in.PrimaryPhysician)}
	}

	patient := models.Patient{
		ID:                     s.newID(),
		Name:                   strings.TrimSpace(in.Name),
		Email:                  strings.TrimSpace(in.Email),
		Phone:                  strings.TrimSpace(in.Phone),
		BirthDate:              in.BirthDate,
		Gender:                 in.Gender,
		Address:                strings.TrimSpace(in.Address),
		Occupation:             strings.TrimSpace(in.Occupation),
		EmergencyContactName:   strings.TrimSpace(in.EmergencyContactName),
		EmergencyContactNumber: strings.TrimSpace(in.EmergencyContactNumber),
		PrimaryPhysician:       in.PrimaryPhysician,
		InsuranceProvider:      strings.TrimSpace(in.InsuranceProvider),
		InsurancePolicyNumber:  strings.TrimSpace(in.InsurancePolicyNumber),
		Allergies:              strings.TrimSpace(in.Allergies),
		CurrentMedication:      strings.TrimSpace(in.CurrentMedication),
		FamilyMedicalHistory:   strings.TrimSpace(in.FamilyMedicalHistory),
		PastMedicalHistory:     strings.TrimSpace(in.PastMedicalHistory),
		TreatmentConsent:       in.TreatmentConsent,
		DisclosureConsent:      in.DisclosureConsent,
		PrivacyConsent:         in.PrivacyConsent,
		CreatedAt:              s.now(),
	}
	if err := s.store.CreateDocument(ctx, store.PatientCollection, patient.ID, patient); err != nil {
		return models.Patient{}, &PersistenceError{Op: "register patient", Err: err}
	}
	if err := s.cache.Set(ctx, cache.PatientKey+patient.ID, patient); err != nil {
		log.Println("Error while caching new patient:", err)
	}
	return patient, nil
}

func (s *PatientService) Get(ctx context.Context, id string) (models.Patient, error) {
	key := cache.PatientKey + id

	var cached models.Patient
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Println("Error reading patient from cache:", err)
	}
	if hit {
		return cached, nil
	}

	var patient models.Patient
	if err := s.store.GetDocument(ctx, store.PatientCollection, id, &patient); err != nil {
		if err == store.ErrNotFound {
			return models.Patient{}, store.ErrNotFound
		}
		return models.Patient{}, &PersistenceError{Op: "get patient", Err: err}
	}
	if err := s.cache.Set(ctx, key, patient); err != nil {
		log.Println("Error while caching patient:", err)
	}
	return patient, nil
}

// PhoneByID implements notifier.PhoneDirectory.
func (s *PatientService) PhoneByID(ctx context.Context, id string) (string, error) {
	patient, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return patient.Phone, nil
}
