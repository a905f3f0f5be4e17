package mocks

import (
	"context"

	"cardtracker/internal/model"
	"cardtracker/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) List(ctx context.Context, lq repository.ListQuery) (*repository.PageResult[model.Card], error) {
	args := m.Called(ctx, lq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Card]), args.Error(1)
}

func (m *MockCardRepository) LastCardID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockCardRepository) Create(ctx context.Context, card *model.Card) (*model.Card, error) {
	args := m.Called(ctx, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Card), args.Error(1)
}

func (m *MockCardRepository) FindByID(ctx context.Context, id int64) (*model.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Card), args.Error(1)
}

func (m *MockCardRepository) Update(ctx context.Context, card *model.Card) (*model.Card, error) {
	args := m.Called(ctx, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Card), args.Error(1)
}

func (m *MockCardRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCardRepository) SetPhotoLinks(ctx context.Context, id int64, links []string) error {
	args := m.Called(ctx, id, links)
	return args.Error(0)
}
