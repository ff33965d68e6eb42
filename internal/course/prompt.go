package course

import (
	"fmt"
	"strings"
)

const analysisSystemPrompt = `You are an expert curriculum designer for English learners.`

func buildAnalysisUserMessage(goal string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("The learner wants to learn English for the following goal: %q.\n", goal))
	b.WriteString(`
Instructions:
Analyze this goal and break it down into 6-10 specific, practical sub-scenarios or situations they will likely encounter.
For example, if the goal is "Travel to USA", sub-scenarios could be "Airport Immigration", "Ordering Food", "Hotel Check-in", "Asking Directions", etc.
Give each topic a short unique id.`)

	return b.String()
}

func buildPlanUserMessage(topics []ScenarioTopic, timeFrame TimeFrame) string {
	titles := make([]string, len(topics))
	for i, t := range topics {
		titles[i] = t.Title
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Selected topics: [%s]\n", strings.Join(titles, ", ")))
	b.WriteString(fmt.Sprintf("Desired timeframe: %q\n", timeFrame))
	b.WriteString(`
Instructions:
Create a structured English study roadmap based on the selected topics.
Organize the topics into a logical sequence of modules, one per topic.
Estimate each module's time so the whole course fits the timeframe.
Set the first module status to 'current', and the rest to 'locked'.`)

	return b.String()
}
