package eventlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCleanupJob(t *testing.T) {
	tests := []struct {
		name      string
		retention int
		deleted   int64
		repoErr   error
	}{
		{name: "Prunes", retention: 10, deleted: 100},
		{name: "Nothing Old", retention: 30},
		{name: "Store Down", retention: 7, repoErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			repo.On("CleanupOldEvents", mock.Anything, tt.retention).Return(tt.deleted, tt.repoErr)

			err := NewCleanupJob(NewService(repo), tt.retention).Process(context.Background())

			assert.ErrorIs(t, err, tt.repoErr)
			repo.AssertExpectations(t)
		})
	}
}
