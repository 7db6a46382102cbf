package quiz_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/quiz"
	"github.com/osse101/VineyardSim_Go/internal/wineapi"
	"github.com/osse101/VineyardSim_Go/mocks"
)

func questions() []wineapi.QuizQuestion {
	return []wineapi.QuizQuestion{
		{ID: "q1", Question: "Grape of Barolo?", Options: []string{"Nebbiolo", "Sangiovese"}, Correct: 0},
		{ID: "q2", Question: "Sancerre is made from?", Options: []string{"Chardonnay", "Sauvignon Blanc", "Riesling"}, Correct: 1},
		{ID: "broken", Question: "No options", Options: []string{"only"}, Correct: 0},
	}
}

func started(t *testing.T) (quiz.Service, *mocks.MockWineAPIClient) {
	t.Helper()
	client := mocks.NewMockWineAPIClient(t)
	client.On("GetQuizQuestions", mock.Anything, 3).Return(questions(), nil)

	svc := quiz.NewService(client, 10, time.Minute)
	v, err := svc.Start(context.Background(), "s1", 3)
	require.NoError(t, err)
	require.Equal(t, 2, v.Total, "malformed questions are dropped")
	return svc, client
}

func TestStart_HidesAnswers(t *testing.T) {
	svc, _ := started(t)

	v, err := svc.Get(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, v.Question)
	assert.Equal(t, "q1", v.Question.ID)
	assert.Nil(t, v.Feedback)
}

func TestStart_UpstreamProblems(t *testing.T) {
	tests := []struct {
		name   string
		result []wineapi.QuizQuestion
		err    error
	}{
		{name: "api error", err: domain.ErrUpstreamUnavailable},
		{name: "no usable questions", result: []wineapi.QuizQuestion{{ID: "x", Options: []string{"a"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockWineAPIClient(t)
			client.On("GetQuizQuestions", mock.Anything, 5).Return(tt.result, tt.err)

			_, err := quiz.NewService(client, 10, time.Minute).Start(context.Background(), "s", 5)
			assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
		})
	}
}

func TestAnswerAndNext(t *testing.T) {
	svc, client := started(t)
	ctx := context.Background()

	_, err := svc.Next(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "must answer before moving on")

	_, err = svc.Answer(ctx, "s1", 7)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	v, err := svc.Answer(ctx, "s1", 0)
	require.NoError(t, err)
	require.NotNil(t, v.Feedback)
	assert.True(t, v.Feedback.IsCorrect)
	assert.Equal(t, 1, v.Score)

	_, err = svc.Answer(ctx, "s1", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cannot answer twice")

	v, err = svc.Next(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, v.Index)

	v, err = svc.Answer(ctx, "s1", 2)
	require.NoError(t, err)
	assert.False(t, v.Feedback.IsCorrect)
	assert.Equal(t, 1, v.Feedback.Correct)

	client.On("SubmitQuiz", mock.Anything, mock.MatchedBy(func(s wineapi.QuizSubmission) bool {
		return s.SessionID == "s1" && s.Score == 1 && s.Total == 2 && len(s.Answers) == 2
	})).Return(&wineapi.QuizReceipt{Percentile: 50}, nil)

	v, err = svc.Next(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, v.Finished)
	assert.Nil(t, v.Question)
	require.NotNil(t, v.Receipt)
	assert.InDelta(t, 50.0, v.Receipt.Percentile, 0.001)

	_, err = svc.Answer(ctx, "s1", 0)
	assert.ErrorIs(t, err, domain.ErrQuizFinished)
}

func TestFinish_SubmissionFailureStillFinishes(t *testing.T) {
	svc, client := started(t)
	ctx := context.Background()
	client.On("SubmitQuiz", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	for i := 0; i < 2; i++ {
		_, err := svc.Answer(ctx, "s1", 0)
		require.NoError(t, err)
		_, err = svc.Next(ctx, "s1")
		require.NoError(t, err)
	}

	v, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, v.Finished)
	assert.Nil(t, v.Receipt)
}

func TestAbandon(t *testing.T) {
	svc, _ := started(t)
	ctx := context.Background()

	require.NoError(t, svc.Abandon(ctx, "s1"))
	_, err := svc.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrQuizNotFound)
	assert.ErrorIs(t, svc.Abandon(ctx, "s1"), domain.ErrQuizNotFound)
}
