package level

// Flashcard is one practical sentence to drill.
type Flashcard struct {
	ID            string `json:"id"`
	Front         string `json:"front"`         // target-language sentence
	Back          string `json:"back"`          // translation and explanation
	Pronunciation string `json:"pronunciation"` // IPA or phonetic guide
	ImagePrompt   string `json:"imageVisualDescription"`
}

// QuizQuestion is one multiple-choice exam question.
type QuizQuestion struct {
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// StudyTask is one item of the level's micro-task list.
type StudyTask struct {
	Day      int    `json:"day"`
	Focus    string `json:"focus"`
	Task     string `json:"task"`
	Duration string `json:"duration"`
}

// RolePlayScenario frames the conversational practice for a level.
type RolePlayScenario struct {
	Setting     string `json:"setting"`
	UserRole    string `json:"userRole"`
	AIRole      string `json:"aiRole"`
	Objective   string `json:"objective"`
	OpeningLine string `json:"openingLine"`
}

// Data is a fully generated learning level for one scenario.
type Data struct {
	Topic      string           `json:"topic"`
	LevelName  string           `json:"levelName"`
	Flashcards []Flashcard      `json:"flashcards"`
	RolePlay   RolePlayScenario `json:"rolePlay"`
	Exam       []QuizQuestion   `json:"exam"`
	Tasks      []StudyTask      `json:"weeklyPlan"`
}
