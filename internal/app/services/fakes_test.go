package services

import (
	"context"
	"mime/multipart"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/akademia/akademia/internal/app/models"
	"github.com/akademia/akademia/internal/pkg/apperrors"
)

// fakeUserRepo is an in-memory IUserRepository for service tests
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// The real column is NOT NULL and a nil slice encodes as SQL NULL
	if user.Habilidades == nil {
		return 0, &pgconn.PgError{Code: "23502", ColumnName: "habilidades"}
	}
	for _, existing := range r.users {
		if existing.Email == user.Email || existing.NomeUsuario == user.NomeUsuario {
			return 0, &pgconn.PgError{Code: "23505", ConstraintName: "usuarios_email_key"}
		}
	}
	r.nextID++
	stored := *user
	stored.ID = r.nextID
	stored.DataCriacao = time.Now()
	r.users[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetByVerificationToken(_ context.Context, token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.TokenVerificacao != nil && *user.TokenVerificacao == token {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) ActivateByToken(_ context.Context, userID int64, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok || user.TokenVerificacao == nil || *user.TokenVerificacao != token {
		return false, nil
	}
	user.Status = models.StatusAtivo
	user.TokenVerificacao = nil
	user.TokenExpiracao = nil
	return true, nil
}

func (r *fakeUserRepo) UpdateHabilidades(_ context.Context, userID int64, habilidades []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Habilidades = habilidades
	return nil
}

func (r *fakeUserRepo) UpdateFotoPerfil(_ context.Context, userID int64, filename string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.FotoPerfil = &filename
	return nil
}

// fakeEmailService records sent emails and signals on a channel so tests can
// wait for the asynchronous dispatch.
type fakeEmailService struct {
	mu   sync.Mutex
	sent []sentEmail
	done chan struct{}
	err  error
}

type sentEmail struct {
	toEmail string
	toName  string
	token   string
}

func newFakeEmailService() *fakeEmailService {
	return &fakeEmailService{done: make(chan struct{}, 10)}
}

func (f *fakeEmailService) SendVerificationEmail(toEmail, toName, token string) error {
	f.mu.Lock()
	f.sent = append(f.sent, sentEmail{toEmail: toEmail, toName: toName, token: token})
	err := f.err
	f.mu.Unlock()
	f.done <- struct{}{}
	return err
}

func (f *fakeEmailService) waitForSend(timeout time.Duration) bool {
	select {
	case <-f.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (f *fakeEmailService) lastSent() (sentEmail, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		return sentEmail{}, false
	}
	return f.sent[len(f.sent)-1], true
}

// fakePostRepo is an in-memory IPostRepository
type fakePostRepo struct {
	mu     sync.Mutex
	nextID int64
	posts  []models.Post
	err    error
}

func (r *fakePostRepo) Create(_ context.Context, post *models.Post) (int64, time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, time.Time{}, r.err
	}
	r.nextID++
	createdAt := time.Now()
	stored := *post
	stored.ID = r.nextID
	stored.DataCriacao = createdAt
	r.posts = append(r.posts, stored)
	return stored.ID, createdAt, nil
}

func (r *fakePostRepo) GetFeed(_ context.Context) ([]models.FeedPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	feed := make([]models.FeedPost, 0, len(r.posts))
	for i := len(r.posts) - 1; i >= 0; i-- {
		feed = append(feed, models.FeedPost{Post: r.posts[i], NomeCompleto: "Autor Teste"})
	}
	return feed, nil
}

// fakeProjectRepo is an in-memory IProjectRepository
type fakeProjectRepo struct {
	mu       sync.Mutex
	nextID   int64
	projects map[int64]*models.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[int64]*models.Project)}
}

func (r *fakeProjectRepo) Create(_ context.Context, project *models.Project) (int64, time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	createdAt := time.Now()
	stored := *project
	stored.ID = r.nextID
	stored.DataCriacao = createdAt
	r.projects[stored.ID] = &stored
	return stored.ID, createdAt, nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id int64) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	project, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	copied := *project
	return &copied, nil
}

func (r *fakeProjectRepo) ListByUser(_ context.Context, userID int64) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.Project, 0)
	for _, project := range r.projects {
		if project.UsuarioID == userID {
			result = append(result, *project)
		}
	}
	return result, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[project.ID]; !ok {
		return apperrors.ErrResourceNotFound
	}
	copied := *project
	r.projects[project.ID] = &copied
	return nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(r.projects, id)
	return nil
}

// fakeStorage is an in-memory FileStorage
type fakeStorage struct {
	mu      sync.Mutex
	saved   []string
	deleted []string
	saveErr error
}

func (f *fakeStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return "", f.saveErr
	}
	name := "stored-" + fileHeader.Filename
	f.saved = append(f.saved, name)
	return name, nil
}

func (f *fakeStorage) DeleteFile(filename string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, filename)
	return nil
}
