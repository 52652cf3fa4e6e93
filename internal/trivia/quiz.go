package trivia

import "fmt"

const defaultHint = "Think about our special moments together!"

// Question is one quiz prompt.
type Question struct {
	Prompt   string
	Answer   string
	Hints    []string
	Synonyms []string
}

// Answer is what was typed for a question and whether it matched.
type Answer struct {
	Text    string
	Correct bool
}

// FeedbackKind classifies the result of checking one answer.
type FeedbackKind int

const (
	FeedbackCleared FeedbackKind = iota
	FeedbackCorrect
	FeedbackIncorrect
)

// Feedback is shown under a question after Check.
type Feedback struct {
	Kind FeedbackKind
	Text string
}

// Outcome is the result of trying to finish the quiz.
type Outcome struct {
	Complete bool
	Message  string
	Warning  bool
	// Wrong holds the indexes of incorrectly answered questions.
	Wrong []int
}

// Quiz holds per-session answers. Question indexes are zero based.
type Quiz struct {
	questions []Question
	answers   map[int]Answer
	current   int
	matcher   Matcher
}

func New(questions []Question, matcher Matcher) *Quiz {
	return &Quiz{
		questions: questions,
		answers:   make(map[int]Answer, len(questions)),
		matcher:   matcher,
	}
}

func (q *Quiz) Len() int     { return len(q.questions) }
func (q *Quiz) Current() int { return q.current }

// Question returns the question at i.
func (q *Quiz) Question(i int) Question {
	if i < 0 || i >= len(q.questions) {
		return Question{}
	}
	return q.questions[i]
}

// Goto moves to question i and reports whether it moved.
func (q *Quiz) Goto(i int) bool {
	if i < 0 || i >= len(q.questions) || i == q.current {
		return false
	}
	q.current = i
	return true
}

func (q *Quiz) Next() bool { return q.Goto(q.current + 1) }
func (q *Quiz) Prev() bool { return q.Goto(q.current - 1) }

// Check grades input for question i. Blank input clears the stored answer.
func (q *Quiz) Check(i int, input string) Feedback {
	if i < 0 || i >= len(q.questions) {
		return Feedback{}
	}
	user := Normalize(input)
	if user == "" {
		delete(q.answers, i)
		return Feedback{Kind: FeedbackCleared}
	}
	qq := q.questions[i]
	ok := q.matcher.Match(user, qq.Answer, qq.Synonyms)
	q.answers[i] = Answer{Text: user, Correct: ok}
	if ok {
		return Feedback{Kind: FeedbackCorrect, Text: "✅ Correct! Great memory!"}
	}
	return Feedback{Kind: FeedbackIncorrect, Text: "❌ Not quite. Try again! Hint: " + q.Hint(i)}
}

// Answer returns the stored answer for question i.
func (q *Quiz) Answer(i int) (Answer, bool) {
	a, ok := q.answers[i]
	return a, ok
}

// Hint returns the first hint for question i.
func (q *Quiz) Hint(i int) string {
	if i >= 0 && i < len(q.questions) && len(q.questions[i].Hints) > 0 {
		return q.questions[i].Hints[0]
	}
	return defaultHint
}

func (q *Quiz) AnsweredCount() int { return len(q.answers) }

func (q *Quiz) AllAnswered() bool { return len(q.answers) == len(q.questions) }

func (q *Quiz) CorrectCount() int {
	n := 0
	for _, a := range q.answers {
		if a.Correct {
			n++
		}
	}
	return n
}

// NextLabel is the caption of the next-question control; empty means hidden.
func (q *Quiz) NextLabel() string {
	switch {
	case q.current < len(q.questions)-1:
		return "Next Question →"
	case q.AllAnswered():
		return "Review Answers"
	}
	return ""
}

// Finish tries to complete the quiz.
func (q *Quiz) Finish() Outcome {
	if !q.AllAnswered() {
		return Outcome{Message: "Please answer all questions before completing!", Warning: true}
	}
	correct := q.CorrectCount()
	if correct == len(q.questions) {
		return Outcome{Complete: true, Message: "🎉 Perfect! All answers correct!"}
	}
	var wrong []int
	for i := range q.questions {
		if a, ok := q.answers[i]; ok && !a.Correct {
			wrong = append(wrong, i)
		}
	}
	return Outcome{
		Message: fmt.Sprintf("You got %d out of %d correct! Keep trying!", correct, len(q.questions)),
		Warning: true,
		Wrong:   wrong,
	}
}
