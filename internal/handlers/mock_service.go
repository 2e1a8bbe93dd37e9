package handlers

import (
	"context"

	"techsphere/internal/models"
	"techsphere/internal/service"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser models.User
	signUpErr  error
	loginUser  models.User
	loginToken string
	loginErr   error
	parseUser  string
	parseErr   error

	lastSignUp        service.SignUpParams
	lastLoginUsername string
	lastLoginPassword string
	signUpCalls       int
	loginCalls        int
}

func (m *mockAuth) SignUp(ctx context.Context, p service.SignUpParams) (models.User, error) {
	m.signUpCalls++
	m.lastSignUp = p
	return m.signUpUser, m.signUpErr
}

func (m *mockAuth) Login(ctx context.Context, username, password string) (models.User, string, error) {
	m.loginCalls++
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginUser, m.loginToken, m.loginErr
}

func (m *mockAuth) ParseToken(accessToken string) (string, error) {
	return m.parseUser, m.parseErr
}

type mockProfile struct {
	getUser models.User
	getErr  error
	updErr  error

	lastUpdateUsername string
	lastUpdate         service.ProfileParams
	updateCalls        int
}

func (m *mockProfile) Get(ctx context.Context, username string) (models.User, error) {
	return m.getUser, m.getErr
}

func (m *mockProfile) Update(ctx context.Context, username string, p service.ProfileParams) error {
	m.updateCalls++
	m.lastUpdateUsername = username
	m.lastUpdate = p
	return m.updErr
}

type mockBlog struct {
	createPost models.Post
	createErr  error
	feedPosts  []models.Post
	feedErr    error
	byAuthor   []models.Post
	byAuthErr  error
	getPost    models.Post
	getErr     error
	editErr    error
	deleteErr  error

	lastCreateAuthor string
	lastCreateTitle  string
	lastEditActor    string
	lastEditID       string
	lastDeleteActor  string
	lastDeleteID     string
	createCalls      int
	editCalls        int
	deleteCalls      int
}

func (m *mockBlog) Create(ctx context.Context, author, title, content string) (models.Post, error) {
	m.createCalls++
	m.lastCreateAuthor = author
	m.lastCreateTitle = title
	return m.createPost, m.createErr
}

func (m *mockBlog) Feed(ctx context.Context) ([]models.Post, error) {
	return m.feedPosts, m.feedErr
}

func (m *mockBlog) ByAuthor(ctx context.Context, author string) ([]models.Post, error) {
	return m.byAuthor, m.byAuthErr
}

func (m *mockBlog) Get(ctx context.Context, id string) (models.Post, error) {
	return m.getPost, m.getErr
}

func (m *mockBlog) Edit(ctx context.Context, actor, id, title, content string) error {
	m.editCalls++
	m.lastEditActor = actor
	m.lastEditID = id
	return m.editErr
}

func (m *mockBlog) Delete(ctx context.Context, actor, id string) error {
	m.deleteCalls++
	m.lastDeleteActor = actor
	m.lastDeleteID = id
	return m.deleteErr
}
