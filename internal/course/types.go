package course

// ScenarioTopic is one practical sub-scenario derived from the learner's goal.
type ScenarioTopic struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	KeyVocabulary []string `json:"keyVocabulary"`
}

// AnalysisResult breaks a free-form learning goal into concrete scenarios.
type AnalysisResult struct {
	OriginalGoal    string          `json:"originalGoal"`
	SuggestedTopics []ScenarioTopic `json:"suggestedTopics"`
}

// TimeFrame is the period the learner wants the course to span.
type TimeFrame string

const (
	TimeFrameDay   TimeFrame = "Day"
	TimeFrameWeek  TimeFrame = "Week"
	TimeFrameMonth TimeFrame = "Month"
	TimeFrameYear  TimeFrame = "Year"
)

// TimeFrames lists the selectable pacing options in display order.
func TimeFrames() []TimeFrame {
	return []TimeFrame{TimeFrameDay, TimeFrameWeek, TimeFrameMonth, TimeFrameYear}
}

// ModuleStatus tracks a module's progression state.
type ModuleStatus string

const (
	StatusLocked    ModuleStatus = "locked"
	StatusCurrent   ModuleStatus = "current"
	StatusCompleted ModuleStatus = "completed"
)

// CourseModule is one scenario-sized unit of the roadmap.
type CourseModule struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	EstimatedTime string       `json:"estimatedTime"`
	Status        ModuleStatus `json:"status"`
}

// CoursePlan is the ordered roadmap built from the selected topics.
type CoursePlan struct {
	PlanTitle     string         `json:"planTitle"`
	TotalDuration string         `json:"totalDuration"`
	Modules       []CourseModule `json:"modules"`
}

// CurrentModule returns the module the learner should work on next,
// or nil when every module is completed.
func (p *CoursePlan) CurrentModule() *CourseModule {
	for i := range p.Modules {
		if p.Modules[i].Status == StatusCurrent {
			return &p.Modules[i]
		}
	}
	return nil
}

// CompleteModule marks the module with the given ID as completed and
// unlocks the next locked module. Returns false if no module matched.
func (p *CoursePlan) CompleteModule(id string) bool {
	for i := range p.Modules {
		if p.Modules[i].ID != id {
			continue
		}
		p.Modules[i].Status = StatusCompleted
		for j := i + 1; j < len(p.Modules); j++ {
			if p.Modules[j].Status == StatusLocked {
				p.Modules[j].Status = StatusCurrent
				break
			}
		}
		return true
	}
	return false
}

// Completed reports whether every module in the plan is completed.
func (p *CoursePlan) Completed() bool {
	for _, m := range p.Modules {
		if m.Status != StatusCompleted {
			return false
		}
	}
	return len(p.Modules) > 0
}
