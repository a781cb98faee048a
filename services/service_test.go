package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"CareDesk/models"
	"CareDesk/store"
)

// -------------------------
// Test doubles (in-memory)
// -------------------------

type fakeStore struct {
	appointments map[string]models.Appointment
	patients     map[string]models.Patient
	createErr    error
	updateErr    error
	listErr      error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		appointments: map[string]models.Appointment{},
		patients:     map[string]models.Patient{},
	}
}

func (f *fakeStore) CreateDocument(ctx context.Context, collection, id string, doc any) error {
	if f.createErr != nil {
		return f.createErr
	}
	switch v := doc.(type) {
	case models.Appointment:
		f.appointments[id] = v
	case models.Patient:
		f.patients[id] = v
	default:
		return errors.New("fake store: unsupported document type")
	}
	return nil
}

func (f *fakeStore) GetDocument(ctx context.Context, collection, id string, out any) error {
	switch o := out.(type) {
	case *models.Appointment:
		a, ok := f.appointments[id]
		if !ok {
			return store.ErrNotFound
		}
		*o = a
	case *models.Patient:
		p, ok := f.patients[id]
		if !ok {
			return store.ErrNotFound
		}
		*o = p
	default:
		return errors.New("fake store: unsupported output type")
	}
	return nil
}

func (f *fakeStore) UpdateDocument(ctx context.Context, collection, id string, patch map[string]any, out any) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	a, ok := f.appointments[id]
	if !ok {
		return store.ErrNotFound
	}
	for k, v := range patch {
		switch k {
		case "status":
			a.Status = v.(models.AppointmentStatus)
		case "schedule":
			a.Schedule = v.(time.Time)
		case "cancellationReason":
			a.CancellationReason = v.(string)
		}
	}
	f.appointments[id] = a
	*out.(*models.Appointment) = a
	return nil
}

func (f *fakeStore) ListDocuments(ctx context.Context, collection string, q store.ListQuery, out any) (int64, error) {
	if f.listErr != nil {
		return 0, f.listErr
	}
	all := make([]models.Appointment, 0, len(f.appointments))
	for _, a := range f.appointments {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := int64(len(all))
	if q.Limit > 0 && int64(len(all)) > q.Limit {
		all = all[:q.Limit]
	}
	*out.(*[]models.Appointment) = all
	return total, nil
}

type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = b
	return nil
}

func (f *fakeCache) Get(ctx context.Context, key string, out any) (bool, error) {
	b, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

type sentMessage struct {
	recipient string
	message   string
}

type fakeNotifier struct {
	sends []sentMessage
	err   error
}

func (f *fakeNotifier) Send(ctx context.Context, recipientID, message string) error {
	if f.err != nil {
		return f.err
	}
	f.sends = append(f.sends, sentMessage{recipient: recipientID, message: message})
	return nil
}

// sequentialClock hands out strictly increasing timestamps.
func sequentialClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + string(rune('0'+n))
	}
}
