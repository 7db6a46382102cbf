// Package quiz runs multiple choice quizzes over questions fetched from the
// wine service, one quiz per session.
package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/VineyardSim_Go/internal/concurrency"
	"github.com/osse101/VineyardSim_Go/internal/domain"
	"github.com/osse101/VineyardSim_Go/internal/logger"
	"github.com/osse101/VineyardSim_Go/internal/wineapi"
)

// Question is a question as shown to the player, without its answer
type Question struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Feedback reveals the answer to the current question once it is answered
type Feedback struct {
	Choice      int    `json:"choice"`
	Correct     int    `json:"correct"`
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation,omitempty"`
}

// View is the player's view of a quiz
type View struct {
	Index    int                  `json:"index"`
	Total    int                  `json:"total"`
	Score    int                  `json:"score"`
	Question *Question            `json:"question,omitempty"`
	Feedback *Feedback            `json:"feedback,omitempty"`
	Finished bool                 `json:"finished"`
	Receipt  *wineapi.QuizReceipt `json:"receipt,omitempty"`
}

type session struct {
	questions []wineapi.QuizQuestion
	answers   []wineapi.QuizAnswer
	current   int
	score     int
	finished  bool
	receipt   *wineapi.QuizReceipt
	startedAt time.Time
}

func (s *session) answered() bool {
	return len(s.answers) > s.current
}

func (s *session) view() *View {
	v := &View{
		Index:    s.current,
		Total:    len(s.questions),
		Score:    s.score,
		Finished: s.finished,
		Receipt:  s.receipt,
	}
	if s.finished {
		return v
	}

	q := s.questions[s.current]
	v.Question = &Question{ID: q.ID, Question: q.Question, Options: q.Options}
	if s.answered() {
		a := s.answers[s.current]
		v.Feedback = &Feedback{Choice: a.Choice, Correct: q.Correct, IsCorrect: a.Correct, Explanation: q.Explanation}
	}
	return v
}

// Service defines quiz operations keyed by session id
type Service interface {
	Start(ctx context.Context, sessionID string, count int) (*View, error)
	Get(ctx context.Context, sessionID string) (*View, error)
	Answer(ctx context.Context, sessionID string, choice int) (*View, error)
	Next(ctx context.Context, sessionID string) (*View, error)
	Abandon(ctx context.Context, sessionID string) error
}

type service struct {
	client   wineapi.Client
	sessions *expirable.LRU[string, *session]
	locks    *concurrency.LockManager
}

// NewService creates a quiz service. Idle sessions expire after ttl.
func NewService(client wineapi.Client, maxSessions int, ttl time.Duration) Service {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &service{
		client:   client,
		sessions: expirable.NewLRU[string, *session](maxSessions, nil, ttl),
		locks:    concurrency.NewLockManager(),
	}
}

func (s *service) Start(ctx context.Context, sessionID string, count int) (*View, error) {
	questions, err := s.client.GetQuizQuestions(ctx, count)
	if err != nil {
		return nil, err
	}

	usable := questions[:0:0]
	for _, q := range questions {
		if len(q.Options) >= 2 && q.Correct >= 0 && q.Correct < len(q.Options) {
			usable = append(usable, q)
		}
	}
	if len(usable) == 0 {
		return nil, fmt.Errorf("%w: no usable quiz questions", domain.ErrUpstreamUnavailable)
	}

	var v *View
	_ = s.locks.WithLock(sessionID, func() error {
		sess := &session{questions: usable, startedAt: time.Now()}
		s.sessions.Add(sessionID, sess)
		v = sess.view()
		return nil
	})

	logger.FromContext(ctx).Info(LogMsgQuizStarted, "session_id", sessionID, "questions", len(usable))
	return v, nil
}

// withSession runs fn on the session under its lock
func (s *service) withSession(sessionID string, fn func(sess *session) error) error {
	return s.locks.WithLock(sessionID, func() error {
		sess, ok := s.sessions.Get(sessionID)
		if !ok {
			return domain.ErrQuizNotFound
		}
		return fn(sess)
	})
}

func (s *service) Get(_ context.Context, sessionID string) (*View, error) {
	var v *View
	err := s.withSession(sessionID, func(sess *session) error {
		v = sess.view()
		return nil
	})
	return v, err
}

func (s *service) Answer(_ context.Context, sessionID string, choice int) (*View, error) {
	var v *View
	err := s.withSession(sessionID, func(sess *session) error {
		if sess.finished {
			return domain.ErrQuizFinished
		}
		if sess.answered() {
			return fmt.Errorf("%w: question already answered", domain.ErrInvalidInput)
		}
		q := sess.questions[sess.current]
		if choice < 0 || choice >= len(q.Options) {
			return fmt.Errorf("%w: choice must be between 0 and %d", domain.ErrInvalidInput, len(q.Options)-1)
		}

		correct := choice == q.Correct
		sess.answers = append(sess.answers, wineapi.QuizAnswer{QuestionID: q.ID, Choice: choice, Correct: correct})
		if correct {
			sess.score++
		}
		v = sess.view()
		return nil
	})
	return v, err
}

func (s *service) Next(ctx context.Context, sessionID string) (*View, error) {
	var (
		v      *View
		finish bool
	)
	err := s.withSession(sessionID, func(sess *session) error {
		if sess.finished {
			return domain.ErrQuizFinished
		}
		if !sess.answered() {
			return fmt.Errorf("%w: answer the current question first", domain.ErrInvalidInput)
		}
		if sess.current < len(sess.questions)-1 {
			sess.current++
		} else {
			sess.finished = true
			finish = true
		}
		v = sess.view()
		return nil
	})
	if err != nil || !finish {
		return v, err
	}

	return s.finish(ctx, sessionID, v)
}

// finish reports the result upstream. The quiz counts as finished even when that fails.
func (s *service) finish(ctx context.Context, sessionID string, v *View) (*View, error) {
	log := logger.FromContext(ctx)

	var submission wineapi.QuizSubmission
	_ = s.withSession(sessionID, func(sess *session) error {
		submission = wineapi.QuizSubmission{
			SessionID: sessionID,
			Score:     sess.score,
			Total:     len(sess.questions),
			Answers:   append([]wineapi.QuizAnswer{}, sess.answers...),
		}
		return nil
	})

	receipt, err := s.client.SubmitQuiz(ctx, submission)
	if err != nil {
		log.Warn(LogMsgSubmissionFailed, "session_id", sessionID, "error", err)
		return v, nil
	}

	err = s.withSession(sessionID, func(sess *session) error {
		sess.receipt = receipt
		v = sess.view()
		return nil
	})
	if err != nil {
		v.Receipt = receipt
	}

	log.Info(LogMsgQuizFinished, "session_id", sessionID, "score", submission.Score, "total", submission.Total)
	return v, nil
}

func (s *service) Abandon(_ context.Context, sessionID string) error {
	return s.locks.WithLock(sessionID, func() error {
		if !s.sessions.Remove(sessionID) {
			return domain.ErrQuizNotFound
		}
		return nil
	})
}
