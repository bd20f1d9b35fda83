package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

type stubUserRepo struct {
	mu     sync.Mutex
	users  map[int]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) unique(u *domain.User) error {
	for id, other := range r.users {
		if id == u.ID {
			continue
		}
		if other.Email == u.Email || other.UserName == u.UserName || other.PhoneNo == u.PhoneNo {
			return domain.ErrDuplicate
		}
	}
	return nil
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.unique(u); err != nil {
		return err
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = cloneUser(u)
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	if err := r.unique(u); err != nil {
		return err
	}
	r.users[u.ID] = cloneUser(u)
	return nil
}

func (r *stubUserRepo) find(match func(*domain.User) bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.ID == id })
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Email == email })
}

func (r *stubUserRepo) FindByUserName(_ context.Context, name string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.UserName == name })
}

func (r *stubUserRepo) FindByPhoneNo(_ context.Context, phone string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.PhoneNo == phone })
}

func (r *stubUserRepo) List(context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

// prefixHasher stands in for bcrypt so tests stay fast.
type prefixHasher struct{}

func (prefixHasher) Hash(_ context.Context, pw string) (string, error) { return "hashed:" + pw, nil }

func (prefixHasher) Compare(_ context.Context, hash, pw string) (bool, error) {
	return hash == "hashed:"+pw, nil
}

type memCodes struct {
	codes map[string]string
}

func newMemCodes() *memCodes { return &memCodes{codes: make(map[string]string)} }

func (m *memCodes) Save(_ context.Context, userName, code string) error {
	m.codes[userName] = code
	return nil
}

func (m *memCodes) Get(_ context.Context, userName string) (string, error) {
	return m.codes[userName], nil
}

type recordingMailer struct {
	sent []ports.VerificationEmail
	err  error
}

func (m *recordingMailer) SendVerificationCode(_ context.Context, msg ports.VerificationEmail) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type stubStorage struct {
	uploads []string
	err     error
}

func (s *stubStorage) Upload(_ context.Context, folder string, f *ports.UploadFile) (ports.StoredObject, error) {
	if s.err != nil {
		return ports.StoredObject{}, s.err
	}
	key := folder + "/" + f.Name
	s.uploads = append(s.uploads, key)
	return ports.StoredObject{URL: "https://storage.googleapis.com/test/" + key, Key: key}, nil
}

func testFile(name string) *ports.UploadFile {
	return &ports.UploadFile{Name: name, ContentType: "image/png", Size: 3, Body: io.NopCloser(strings.NewReader("png"))}
}

type stubTopicRepo struct {
	topics map[int]*domain.Topic
	nextID int
}

func newStubTopicRepo(topics ...domain.Topic) *stubTopicRepo {
	r := &stubTopicRepo{topics: make(map[int]*domain.Topic), nextID: 1}
	for i := range topics {
		t := topics[i]
		r.topics[t.ID] = &t
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}
	return r
}

func (r *stubTopicRepo) Create(_ context.Context, t *domain.Topic) error {
	for _, other := range r.topics {
		if other.Name == t.Name {
			return domain.ErrDuplicate
		}
	}
	t.ID = r.nextID
	r.nextID++
	cp := *t
	r.topics[t.ID] = &cp
	return nil
}

func (r *stubTopicRepo) Update(_ context.Context, t *domain.Topic) error {
	cp := *t
	r.topics[t.ID] = &cp
	return nil
}

func (r *stubTopicRepo) FindByID(_ context.Context, id int) (*domain.Topic, error) {
	t, ok := r.topics[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *stubTopicRepo) FindByName(_ context.Context, name string) (*domain.Topic, error) {
	for _, t := range r.topics {
		if t.Name == name {
			cp := *t
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubTopicRepo) List(context.Context) ([]domain.Topic, error) {
	out := make([]domain.Topic, 0, len(r.topics))
	for _, t := range r.topics {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTopicRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.topics[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.topics, id)
	return nil
}

// stubArticleRepo only serves lookups; writes are recorded.
type stubArticleRepo struct {
	articles map[int]*domain.Article
	created  []*domain.Article
}

func (r *stubArticleRepo) Create(_ context.Context, a *domain.Article) error {
	a.ID = len(r.articles) + len(r.created) + 1
	r.created = append(r.created, a)
	return nil
}

func (r *stubArticleRepo) Update(_ context.Context, a *domain.Article) error {
	cp := *a
	r.articles[a.ID] = &cp
	return nil
}

func (r *stubArticleRepo) FindByID(_ context.Context, id int) (*domain.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *stubArticleRepo) FindWithEngagement(ctx context.Context, id int) (*domain.Article, error) {
	return r.FindByID(ctx, id)
}

func (r *stubArticleRepo) ListByTopic(_ context.Context, topicID int) ([]domain.Article, error) {
	var out []domain.Article
	for _, a := range r.articles {
		if a.TopicID == topicID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubArticleRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.articles[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.articles, id)
	return nil
}

var errStoreDown = errors.New("store unavailable")
