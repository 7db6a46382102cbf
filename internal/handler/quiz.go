package handler

import (
	"net/http"

	"github.com/osse101/VineyardSim_Go/internal/quiz"
)

// QuizHandler drives the wine quiz of a session
type QuizHandler struct {
	service quiz.Service
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(service quiz.Service) *QuizHandler {
	return &QuizHandler{service: service}
}

// StartQuizRequest is the request body for starting a quiz
type StartQuizRequest struct {
	Count int `json:"count" validate:"min=0,max=50"`
}

// AnswerQuizRequest is the request body for answering the current question
type AnswerQuizRequest struct {
	Choice *int `json:"choice" validate:"required,min=0"`
}

// HandleStart fetches questions and starts a new quiz, replacing any in progress
// @Summary Start a quiz
// @Tags quiz
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Browser session id"
// @Param request body StartQuizRequest true "Number of questions (0 for the default)"
// @Success 201 {object} quiz.View
// @Failure 502 {object} ErrorResponse
// @Router /quiz/start [post]
func (h *QuizHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	req, ok := decodeRequest[StartQuizRequest](w, r, "Start quiz")
	if !ok {
		return
	}

	view, err := h.service.Start(r.Context(), sid, req.Count)
	if err != nil {
		respondServiceError(w, r, "Start quiz", err)
		return
	}

	respondJSON(w, http.StatusCreated, view)
}

// HandleGet returns the quiz in progress
// @Summary Current quiz
// @Tags quiz
// @Produce json
// @Param X-Session-ID header string true "Browser session id"
// @Success 200 {object} quiz.View
// @Failure 404 {object} ErrorResponse
// @Router /quiz [get]
func (h *QuizHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.service.Get(r.Context(), sid)
	if err != nil {
		respondServiceError(w, r, "Get quiz", err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// HandleAnswer answers the current question and reveals the correct option
// @Summary Answer a question
// @Tags quiz
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Browser session id"
// @Param request body AnswerQuizRequest true "Chosen option index"
// @Success 200 {object} quiz.View
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /quiz/answer [post]
func (h *QuizHandler) HandleAnswer(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	req, ok := decodeRequest[AnswerQuizRequest](w, r, "Answer quiz")
	if !ok {
		return
	}

	view, err := h.service.Answer(r.Context(), sid, *req.Choice)
	if err != nil {
		respondServiceError(w, r, "Answer quiz", err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// HandleNext moves to the next question, finishing the quiz after the last one
// @Summary Next question
// @Tags quiz
// @Produce json
// @Param X-Session-ID header string true "Browser session id"
// @Success 200 {object} quiz.View
// @Failure 400 {object} ErrorResponse "Current question not answered"
// @Failure 404 {object} ErrorResponse
// @Router /quiz/next [post]
func (h *QuizHandler) HandleNext(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.service.Next(r.Context(), sid)
	if err != nil {
		respondServiceError(w, r, "Next question", err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// HandleAbandon drops the quiz in progress
// @Summary Abandon quiz
// @Tags quiz
// @Produce json
// @Param X-Session-ID header string true "Browser session id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /quiz [delete]
func (h *QuizHandler) HandleAbandon(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.service.Abandon(r.Context(), sid); err != nil {
		respondServiceError(w, r, "Abandon quiz", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgQuizAbandoned})
}
