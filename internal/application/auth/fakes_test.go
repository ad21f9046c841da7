package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/golden-burgers/internal/domain"
	"github.com/jhoicas/golden-burgers/internal/domain/entity"
	"github.com/jhoicas/golden-burgers/pkg/dispatch"
)

type fakeUsers struct {
	mu      sync.Mutex
	byEmail map[string]entity.User
	nextID  int64
	failErr error
	calls   int
}

func newFakeUsers(users ...entity.User) *fakeUsers {
	f := &fakeUsers{byEmail: map[string]entity.User{}}
	for _, u := range users {
		f.nextID++
		u.ID = f.nextID
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUsers) RegisterUser(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failErr != nil {
		return f.failErr
	}
	if _, ok := f.byEmail[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	f.nextID++
	user.ID = f.nextID
	f.byEmail[user.Email] = *user
	return nil
}

func (f *fakeUsers) FindUserByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failErr != nil {
		return nil, f.failErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUsers) UpdateUser(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failErr != nil {
		return f.failErr
	}
	for email, u := range f.byEmail {
		if u.ID == user.ID {
			updated := *user
			updated.Email = email
			f.byEmail[email] = updated
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (f *fakeUsers) get(email string) (entity.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byEmail[email]
	return u, ok
}

func (f *fakeUsers) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// prefixVerifier guarda "hash:" + contraseña para distinguir lo guardado de lo escrito.
type prefixVerifier struct{}

func (prefixVerifier) Hash(p string) (string, error) { return "hash:" + p, nil }

func (prefixVerifier) Compare(stored, p string) error {
	if stored != "hash:"+p {
		return domain.ErrWrongPassword
	}
	return nil
}

type fakeSession struct {
	mu      sync.Mutex
	state   entity.SessionState
	err     error
	cleared bool
}

func (s *fakeSession) Current(context.Context) (entity.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.err
}

func (s *fakeSession) ClearUserSession(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.cleared = true
	s.state = entity.LoggedOutSession()
	return nil
}

// deferredExec guarda las tareas y las ejecuta cuando el test lo pide.
type deferredExec struct {
	mu    sync.Mutex
	tasks []dispatch.Task
}

func (d *deferredExec) Submit(task dispatch.Task) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tasks = append(d.tasks, task)
}

func (d *deferredExec) runAll() {
	d.mu.Lock()
	tasks := d.tasks
	d.tasks = nil
	d.mu.Unlock()
	for _, t := range tasks {
		t(context.Background())
	}
}

// result captura el desenlace de un envío.
type result struct {
	ok  bool
	err error
	n   int
}

func (r *result) callbacks() (func(), func(error)) {
	onSuccess := func() {
		r.ok = true
		r.n++
	}
	onError := func(err error) {
		r.err = err
		r.n++
	}
	return onSuccess, onError
}

var errDisk = errors.New("disk I/O error")
