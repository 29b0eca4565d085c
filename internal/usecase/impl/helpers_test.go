package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"hospital/internal/domain/repository"
	mockRepo "hospital/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction runs the transactional closure against factory and returns its result.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager) *mockRepo.MockRepositoryFactory {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return factory
}

func strPtr(s string) *string {
	return &s
}
