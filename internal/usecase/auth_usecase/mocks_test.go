package auth_test

import (
	"context"
	"time"

	"app/internal/domain/model"

	"github.com/stretchr/testify/mock"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, u model.User) (model.User, error) {
	args := m.Called(ctx, u)
	created, _ := args.Get(0).(model.User)
	return created, args.Error(1)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *UserRepoMock) DeleteByID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type AdminRepoMock struct{ mock.Mock }

func (m *AdminRepoMock) Create(ctx context.Context, a model.Admin) (model.Admin, error) {
	args := m.Called(ctx, a)
	created, _ := args.Get(0).(model.Admin)
	return created, args.Error(1)
}

func (m *AdminRepoMock) FindByID(ctx context.Context, adminID int64) (model.Admin, error) {
	args := m.Called(ctx, adminID)
	a, _ := args.Get(0).(model.Admin)
	return a, args.Error(1)
}

func (m *AdminRepoMock) FindByAdminName(ctx context.Context, adminName string) (model.Admin, error) {
	args := m.Called(ctx, adminName)
	a, _ := args.Get(0).(model.Admin)
	return a, args.Error(1)
}

func (m *AdminRepoMock) List(ctx context.Context) ([]model.Admin, error) {
	args := m.Called(ctx)
	admins, _ := args.Get(0).([]model.Admin)
	return admins, args.Error(1)
}

func (m *AdminRepoMock) DeleteByID(ctx context.Context, adminID int64) error {
	args := m.Called(ctx, adminID)
	return args.Error(0)
}

// 固定トークンを返すissuer
type TokenIssuerStub struct {
	Token string
	Err   error

	//直近のIssue呼び出しの記録
	LastSubjectID int64
	LastRole      string
}

func (s *TokenIssuerStub) Issue(subjectID int64, role string, now time.Time) (string, error) {
	s.LastSubjectID = subjectID
	s.LastRole = role
	return s.Token, s.Err
}
