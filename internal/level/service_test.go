package level

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rahulnair/lingua/internal/llm"
)

func validLevelJSON() json.RawMessage {
	return json.RawMessage(`{
		"topic": "Hotel Check-in",
		"levelName": "Checking In Like a Local",
		"flashcards": [
			{"id": "c1", "front": "I have a reservation under Smith.", "back": "我有一个预订", "pronunciation": "/aɪ hæv ə ˌrɛzərˈveɪʃən/", "imageVisualDescription": "A hotel reception desk"},
			{"id": "", "front": "Could I have a late checkout?", "back": "可以晚点退房吗", "imageVisualDescription": "A room key card on a counter"}
		],
		"rolePlay": {
			"setting": "A busy hotel lobby",
			"userRole": "A guest arriving late",
			"aiRole": "The receptionist",
			"objective": "Check in and ask about breakfast",
			"openingLine": "Good evening! Welcome to the Grand Hotel."
		},
		"exam": [
			{"id": "q1", "question": "What do you say to confirm a booking?", "options": ["I have a reservation", "Give me a room", "Where is the lift?", "Goodbye"], "correctIndex": 0, "explanation": "Polite and standard."}
		],
		"weeklyPlan": [
			{"day": 1, "focus": "Vocabulary", "task": "Review all flashcards", "duration": "15 min"}
		]
	}`)
}

func TestService_GeneratesLevel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLevelJSON()})
	svc := NewService(mock, DefaultConfig())

	data, err := svc.Generate(t.Context(), "Hotel Check-in")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if data.Topic != "Hotel Check-in" {
		t.Errorf("topic = %q", data.Topic)
	}
	if len(data.Flashcards) != 2 {
		t.Fatalf("expected 2 flashcards, got %d", len(data.Flashcards))
	}
	if data.Flashcards[1].ID == "" {
		t.Error("expected generated id for flashcard with empty id")
	}
	if data.RolePlay.OpeningLine == "" {
		t.Error("expected roleplay opening line")
	}
	if len(data.Exam) != 1 || data.Exam[0].CorrectIndex != 0 {
		t.Errorf("exam = %+v", data.Exam)
	}
	if len(data.Tasks) != 1 || data.Tasks[0].Day != 1 {
		t.Errorf("tasks = %+v", data.Tasks)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "learning-level" {
		t.Error("expected learning-level schema on the request")
	}
	if !strings.Contains(req.Messages[0].Content, "Hotel Check-in") {
		t.Error("expected scenario in the prompt")
	}
}

func TestValidate_RejectsBrokenLevels(t *testing.T) {
	base := func() *Data {
		return &Data{
			Flashcards: []Flashcard{{ID: "c1", Front: "Hello"}},
			Exam: []QuizQuestion{
				{ID: "q1", Question: "?", Options: []string{"a", "b"}, CorrectIndex: 1},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Data)
		wantErr bool
	}{
		{"valid", func(d *Data) {}, false},
		{"no flashcards", func(d *Data) { d.Flashcards = nil }, true},
		{"no exam", func(d *Data) { d.Exam = nil }, true},
		{"empty front", func(d *Data) { d.Flashcards[0].Front = "" }, true},
		{"one option", func(d *Data) { d.Exam[0].Options = []string{"a"} }, true},
		{"index out of range", func(d *Data) { d.Exam[0].CorrectIndex = 5 }, true},
		{"negative index", func(d *Data) { d.Exam[0].CorrectIndex = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base()
			tt.mutate(d)
			err := validate(d)
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_GenerateFailsOnInvalidContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"topic":"x","levelName":"x","flashcards":[],"rolePlay":{"setting":"s","userRole":"u","aiRole":"a","objective":"o","openingLine":"l"},"exam":[],"weeklyPlan":[]}`),
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(t.Context(), "x"); err == nil {
		t.Fatal("expected error for level with no content")
	}
}
