package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ctc-webbase/internal/models"
)

type fakeStore struct {
	mu          sync.Mutex
	events      map[bson.ObjectID]*models.Event
	communities map[bson.ObjectID]*models.Community
	users       map[bson.ObjectID]*models.User
	forms       map[bson.ObjectID]*models.Form
	submissions []*models.Submission
	failInsert  error

	failReferrers error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		events:      map[bson.ObjectID]*models.Event{},
		communities: map[bson.ObjectID]*models.Community{},
		users:       map[bson.ObjectID]*models.User{},
		forms:       map[bson.ObjectID]*models.Form{},
	}
}

func (f *fakeStore) addUser(name string, role models.Role) *models.User {
	u := &models.User{ID: bson.NewObjectID(), Name: name, Email: strings.ToLower(name) + "@example.com", Role: role}
	f.users[u.ID] = u
	return u
}

func (f *fakeStore) GetEventByID(_ context.Context, id bson.ObjectID) (*models.Event, error) {
	if e, ok := f.events[id]; ok {
		return e, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeStore) GetCommunityByID(_ context.Context, id bson.ObjectID) (*models.Community, error) {
	if c, ok := f.communities[id]; ok {
		return c, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeStore) FindUserByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == strings.ToLower(email) {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeStore) InsertForm(_ context.Context, form *models.Form) error {
	cp := *form
	f.forms[form.ID] = &cp
	return nil
}

func (f *fakeStore) FindFormForEvent(_ context.Context, formID, eventID bson.ObjectID) (*models.Form, error) {
	form, ok := f.forms[formID]
	if !ok || form.EventID != eventID {
		return nil, mongo.ErrNoDocuments
	}
	cp := *form
	return &cp, nil
}

func (f *fakeStore) ListFormsByEvent(_ context.Context, eventID bson.ObjectID) ([]models.Form, error) {
	out := []models.Form{}
	for _, form := range f.forms {
		if form.EventID == eventID {
			out = append(out, *form)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeStore) UpdateForm(_ context.Context, formID bson.ObjectID, set bson.M) (*models.Form, error) {
	form, ok := f.forms[formID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if v, ok := set["title"].(string); ok {
		form.Title = v
	}
	if v, ok := set["description"].(string); ok {
		form.Description = v
	}
	if v, ok := set["fields"].([]models.Field); ok {
		form.Fields = v
	}
	form.UpdatedAt = time.Now()
	cp := *form
	return &cp, nil
}

func (f *fakeStore) DeleteForm(_ context.Context, formID bson.ObjectID) error {
	kept := f.submissions[:0]
	for _, s := range f.submissions {
		if s.FormID != formID {
			kept = append(kept, s)
		}
	}
	f.submissions = kept
	if _, ok := f.forms[formID]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.forms, formID)
	return nil
}

func (f *fakeStore) NormalizeEventRefs(context.Context) (int64, error) { return 0, nil }

func (f *fakeStore) InsertSubmission(_ context.Context, s *models.Submission) error {
	if f.failInsert != nil {
		return f.failInsert
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submissions = append(f.submissions, s)
	return nil
}

func (f *fakeStore) ListByFormWithUsers(_ context.Context, formID bson.ObjectID) ([]models.SubmissionWithUser, error) {
	var out []models.SubmissionWithUser
	for _, s := range f.submissions {
		if s.FormID != formID {
			continue
		}
		row := models.SubmissionWithUser{Submission: *s}
		if u, ok := f.users[s.UserID]; ok {
			row.UserName, row.UserEmail = u.Name, u.Email
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeStore) ExistsForUser(_ context.Context, formID, userID bson.ObjectID) (bool, error) {
	for _, s := range f.submissions {
		if s.FormID == formID && s.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) ReferrersOfForm(_ context.Context, formID bson.ObjectID) ([]string, error) {
	if f.failReferrers != nil {
		return nil, f.failReferrers
	}
	seen := map[string]bool{}
	var out []string
	for _, s := range f.submissions {
		if s.FormID == formID && s.Attributed() && !seen[s.ReferredBy] {
			seen[s.ReferredBy] = true
			out = append(out, s.ReferredBy)
		}
	}
	return out, nil
}

var errBoom = errors.New("boom")
