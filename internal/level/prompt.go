package level

import (
	"fmt"
	"strings"
)

const levelSystemPrompt = `You are an expert English teacher building immersive scenario-based lessons.`

func buildLevelUserMessage(scenario string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Create a detailed learning module for the specific scenario: %q.\n", scenario))
	b.WriteString(`
Requirements:
1. Flashcards: 6-8 practical sentences. Include a visual description suitable for generating a first-person view illustration.
2. Roleplay: a realistic dialogue setup with setting, roles, objective, and an opening line.
3. Exam: 3-5 multiple-choice questions, each with exactly 4 options.
4. WeeklyPlan: a micro-task list (3-5 items) to master JUST this specific scenario.`)

	return b.String()
}
