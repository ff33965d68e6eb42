package i18n

var en = map[string]string{
	// Welcome
	"welcome_title":    "Lingua",
	"welcome_subtitle": "Design your perfect learning path.",
	"goal_prompt":      "What is your main learning goal?",
	"goal_placeholder": "e.g. Travel to Japan, Work in Tech...",
	"analyze_btn":      "Analyze My Goal",
	"popular_goals":    "POPULAR GOALS",

	// Analysis
	"mission_analysis": "Mission Analysis",
	"found_scenarios":  "key scenarios found. Select to master.",
	"pace":             "Pace",
	"selected":         "Selected",
	"generate_plan":    "Generate Plan",

	// Roadmap
	"duration": "Duration",
	"level":    "Level {n}",
	"locked":   "Locked",
	"current":  "CURRENT",
	"start":    "Start",
	"review":   "Review",

	// Flashcards
	"scene_cards":   "Scene Cards",
	"card_of":       "Card {current} of {total}",
	"view_mode":     "View Mode",
	"drill_mode":    "Typing Drill",
	"speech_mode":   "Speech Drill",
	"scene":         "SCENE",
	"loading_scene": "Loading Scene",
	"visualizing":   "Visualizing...",
	"tap_meaning":   "Press Space for meaning",
	"translation":   "TRANSLATION",
	"context":       "Context",
	"got_it":        "Got it",

	// Drill / Speech
	"drill_instruction":  "Listen and type exactly what you hear.",
	"speech_instruction": "Press M and read the sentence aloud.",
	"perfect":            "Perfect! Press Enter",
	"try_again":          "Not quite. Try again!",
	"check":              "Check",
	"listening":          "Listening...",
	"accuracy":           "Accuracy",
	"mic_unavailable":    "No microphone support on this host. Replay audio instead.",

	// Roleplay
	"roleplay_title": "Role Play",
	"objective":      "Objective",
	"type_response":  "Type your response...",

	// Exam
	"exam_complete":   "Exam Complete!",
	"keep_practicing": "Keep practicing!",
	"perfect_score":   "Perfect Score!",
	"great_job":       "Great Job!",
	"good_effort":     "Good effort.",
	"you_got":         "You got {score} out of {total} correct",
	"try_retry":       "Try Again",
	"question":        "Question",
	"explanation":     "Explanation",
	"next_question":   "Next Question",
	"see_results":     "See Results",

	// Tasks
	"attack_plan": "7-Day Attack Plan",
	"consistency": "Consistency is the key to fluency!",
	"day":         "Day {n}",

	// App shell
	"back_map":     "Back to Map",
	"tab_cards":    "Cards",
	"tab_roleplay": "Roleplay",
	"tab_exam":     "Exam",
	"tab_tasks":    "Tasks",
}

var zh = map[string]string{
	// Welcome
	"welcome_title":    "语言进阶大师",
	"welcome_subtitle": "定制您的完美学习路径",
	"goal_prompt":      "您的主要学习目标是什么？",
	"goal_placeholder": "例如：去日本旅行，IT行业英语...",
	"analyze_btn":      "智能分析目标",
	"popular_goals":    "热门目标",

	// Analysis
	"mission_analysis": "任务分析",
	"found_scenarios":  "个关键场景。请选择您想掌握的。",
	"pace":             "学习节奏",
	"selected":         "已选",
	"generate_plan":    "生成计划",

	// Roadmap
	"duration": "总时长",
	"level":    "第 {n} 关",
	"locked":   "未解锁",
	"current":  "当前",
	"start":    "开始学习",
	"review":   "复习",

	// Flashcards
	"scene_cards":   "场景卡片",
	"card_of":       "第 {current} / {total} 张",
	"view_mode":     "浏览模式",
	"drill_mode":    "听写模式",
	"speech_mode":   "口语模式",
	"scene":         "场景",
	"loading_scene": "场景加载中",
	"visualizing":   "生成画面...",
	"tap_meaning":   "按空格查看释义",
	"translation":   "中文翻译",
	"context":       "语境",
	"got_it":        "已掌握",

	// Drill / Speech
	"drill_instruction":  "听录音，输入您听到的句子。",
	"speech_instruction": "按 M 键，大声朗读句子。",
	"perfect":            "完美！按回车键继续",
	"try_again":          "不太对，再试一次！",
	"check":              "检查",
	"listening":          "正在听...",
	"accuracy":           "准确度",
	"mic_unavailable":    "此设备不支持语音输入，请改用音频回放。",

	// Roleplay
	"roleplay_title": "角色扮演",
	"objective":      "目标",
	"type_response":  "输入您的回复...",

	// Exam
	"exam_complete":   "测验完成！",
	"keep_practicing": "继续加油！",
	"perfect_score":   "满分！你是大师！",
	"great_job":       "太棒了！",
	"good_effort":     "不错的尝试。",
	"you_got":         "答对 {score} / {total} 题",
	"try_retry":       "再试一次",
	"question":        "问题",
	"explanation":     "解析",
	"next_question":   "下一题",
	"see_results":     "查看结果",

	// Tasks
	"attack_plan": "7天攻克计划",
	"consistency": "坚持是流利的关键！",
	"day":         "第 {n} 天",

	// App shell
	"back_map":     "返回地图",
	"tab_cards":    "卡片",
	"tab_roleplay": "对话",
	"tab_exam":     "测验",
	"tab_tasks":    "计划",
}
