package wineapi

// Wine is one search hit from the remote service
type Wine struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Producer     string   `json:"producer,omitempty"`
	Vintage      int      `json:"vintage,omitempty"`
	Color        string   `json:"color,omitempty"`
	Region       string   `json:"region,omitempty"`
	Country      string   `json:"country,omitempty"`
	Grapes       []string `json:"grapes,omitempty"`
	Rating       float64  `json:"rating,omitempty"`
	Impression   string   `json:"impression"`
	TastingNotes []string `json:"tasting_notes,omitempty"`
	Latitude     float64  `json:"latitude,omitempty"`
	Longitude    float64  `json:"longitude,omitempty"`
}

// SearchResult is the response to a name or image search
type SearchResult struct {
	Query string `json:"query,omitempty"`
	Wines []Wine `json:"wines"`
}

// QuizQuestion is one multiple choice question
type QuizQuestion struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation,omitempty"`
}

// QuizAnswer records the option picked for a question
type QuizAnswer struct {
	QuestionID string `json:"question_id"`
	Choice     int    `json:"choice"`
	Correct    bool   `json:"correct"`
}

// QuizSubmission reports a finished quiz
type QuizSubmission struct {
	SessionID string       `json:"session_id"`
	Score     int          `json:"score"`
	Total     int          `json:"total"`
	Answers   []QuizAnswer `json:"answers"`
}

// QuizReceipt is the service's acknowledgement of a submission
type QuizReceipt struct {
	Percentile float64 `json:"percentile"`
	BestScore  int     `json:"best_score"`
}

// Stats are usage statistics kept by the remote service
type Stats struct {
	TotalSearches int            `json:"total_searches"`
	TotalWines    int            `json:"total_wines"`
	QuizzesTaken  int            `json:"quizzes_taken"`
	AverageScore  float64        `json:"average_score"`
	TopSearches   []string       `json:"top_searches,omitempty"`
	ByColor       map[string]int `json:"by_color,omitempty"`
}
