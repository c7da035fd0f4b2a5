package catalog

import "testing"

func TestSeedBuilds(t *testing.T) {
	c := Default()
	if c == nil {
		t.Fatal("expected non-nil default catalog")
	}
	if len(c.Items()) == 0 {
		t.Fatal("expected seeded items")
	}
}

func TestFindByID(t *testing.T) {
	c := Default()

	item, ok := c.FindByID("lesson_math_1_1")
	if !ok {
		t.Fatal("expected to find lesson_math_1_1")
	}
	if item.Type != TypeLesson {
		t.Errorf("type = %q, want lesson", item.Type)
	}
	if item.Subject != SubjectMath {
		t.Errorf("subject = %q, want math", item.Subject)
	}
	if item.Lesson == nil || item.Lesson.Text == "" {
		t.Error("expected decoded lesson payload")
	}

	if _, ok := c.FindByID("nope"); ok {
		t.Error("expected miss for unknown ID")
	}
}

func TestFindReturnsFirstInDeclarationOrder(t *testing.T) {
	c := Default()

	item, ok := c.Find(func(i ContentItem) bool {
		return i.Subject == SubjectMath && i.Level == 1 && i.Type.IsActivity()
	})
	if !ok {
		t.Fatal("expected a level-1 math activity")
	}
	if item.ID != "lesson_math_1_1" {
		t.Errorf("first item = %q, want lesson_math_1_1", item.ID)
	}
}

func TestChainTraversal(t *testing.T) {
	c := Default()

	item, _ := c.FindByID("lesson_math_1_1")
	var visited []string
	for {
		visited = append(visited, item.ID)
		next, ok := c.Next(item)
		if !ok {
			break
		}
		item = next
	}

	// The math chain runs from the level-1 lesson to the level-3 boss battle.
	if visited[len(visited)-1] != "boss_math_3_1" {
		t.Errorf("chain ends at %q, want boss_math_3_1", visited[len(visited)-1])
	}
	for _, id := range visited {
		it, _ := c.FindByID(id)
		if it.Subject != SubjectMath {
			t.Errorf("chain item %q has subject %q", id, it.Subject)
		}
	}
}

func TestSubjectsAndLevels(t *testing.T) {
	c := Default()

	subjects := c.Subjects()
	if len(subjects) != 2 {
		t.Fatalf("subjects = %v, want [math literacy]", subjects)
	}
	if c.MaxLevel(SubjectMath) != 3 {
		t.Errorf("math max level = %d, want 3", c.MaxLevel(SubjectMath))
	}
	if c.MaxLevel(SubjectLiteracy) != 3 {
		t.Errorf("literacy max level = %d, want 3", c.MaxLevel(SubjectLiteracy))
	}
}

func TestSkillsAtLevel(t *testing.T) {
	c := Default()

	skills := c.SkillsAtLevel(SubjectMath, 1)
	want := map[string]bool{"counting_1_10": true, "number_recognition": true, "addition_basic": true}
	for _, s := range skills {
		if !want[s] {
			t.Errorf("unexpected level-1 math skill %q", s)
		}
	}
	if len(skills) != len(want) {
		t.Errorf("skills = %v, want %d entries", skills, len(want))
	}
}

func TestDiagnosticQuestions(t *testing.T) {
	c := Default()

	for _, subject := range AllSubjects() {
		items := c.DiagnosticQuestions(subject)
		if len(items) == 0 {
			t.Errorf("no diagnostic items for %s", subject)
		}
		for _, item := range items {
			if item.Level != 0 {
				t.Errorf("diagnostic %q at level %d, want 0", item.ID, item.Level)
			}
			if len(item.Questions) == 0 {
				t.Errorf("diagnostic %q has no questions", item.ID)
			}
		}
	}
}

func TestDragDropExpectedAnswers(t *testing.T) {
	c := Default()

	item, ok := c.FindByID("match_literacy_2_1")
	if !ok {
		t.Fatal("expected match_literacy_2_1")
	}
	got := item.DragDrop.ExpectedAnswers()
	if got["w_day"] != "night" {
		t.Errorf(`expected answer for w_day = %q, want "night"`, got["w_day"])
	}
	if got["w_happy"] != "sad" {
		t.Errorf(`expected answer for w_happy = %q, want "sad"`, got["w_happy"])
	}
}

func TestValidateRejectsBadContent(t *testing.T) {
	tests := []struct {
		name  string
		items []ContentItem
	}{
		{
			name: "duplicate IDs",
			items: []ContentItem{
				{ID: "a", Type: TypeLesson, Subject: SubjectMath, Level: 1, Lesson: &LessonData{Text: "x"}},
				{ID: "a", Type: TypeLesson, Subject: SubjectMath, Level: 1, Lesson: &LessonData{Text: "y"}},
			},
		},
		{
			name: "dangling next link",
			items: []ContentItem{
				{ID: "a", Type: TypeLesson, Subject: SubjectMath, Level: 1, NextID: "ghost", Lesson: &LessonData{Text: "x"}},
			},
		},
		{
			name: "chain cycle",
			items: []ContentItem{
				{ID: "a", Type: TypeLesson, Subject: SubjectMath, Level: 1, NextID: "b", Lesson: &LessonData{Text: "x"}},
				{ID: "b", Type: TypeLesson, Subject: SubjectMath, Level: 1, NextID: "a", Lesson: &LessonData{Text: "y"}},
			},
		},
		{
			name: "quiz answer outside options",
			items: []ContentItem{
				{ID: "q", Type: TypeQuiz, Subject: SubjectMath, Level: 1, Questions: []QuizQuestion{
					{Prompt: "?", Options: []string{"1", "2"}, Answer: "3"},
				}},
			},
		},
		{
			name: "diagnostic above level zero",
			items: []ContentItem{
				{ID: "d", Type: TypeDiagnosticQuiz, Subject: SubjectMath, Level: 1, Questions: []QuizQuestion{
					{Prompt: "?", Options: []string{"1"}, Answer: "1"},
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateItems(tt.items); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestBuildSeedRejectsSchemaViolation(t *testing.T) {
	bad := []byte(`[{"id": "x", "type": "mystery", "subject": "math", "level": 1}]`)
	if _, err := buildSeed(bad); err == nil {
		t.Error("expected schema validation error")
	}
}

func TestBuildSeedRejectsMalformedQuizQuestions(t *testing.T) {
	// A quiz question without an answer fails the question schema.
	bad := []byte(`[{"id": "x", "type": "quiz", "subject": "math", "level": 1,
		"data": [{"q": "What is 1 + 1?", "options": ["1", "2"]}]}]`)
	if _, err := buildSeed(bad); err == nil {
		t.Error("expected question schema validation error")
	}
}

func TestQuizQuestionFeedbackDecodes(t *testing.T) {
	c := Default()

	item, ok := c.FindByID("quiz_math_1_1")
	if !ok {
		t.Fatal("expected to find quiz_math_1_1")
	}
	q := item.Questions[0]
	if q.FeedbackCorrect != "Great counting!" {
		t.Errorf("feedback_correct = %q", q.FeedbackCorrect)
	}
	if q.FeedbackIncorrect != "Count the apples one more time!" {
		t.Errorf("feedback_incorrect = %q", q.FeedbackIncorrect)
	}
	// Questions without configured feedback stay empty for the session
	// defaults to fill in.
	if q := item.Questions[1]; q.FeedbackCorrect != "" || q.FeedbackIncorrect != "" {
		t.Errorf("unconfigured question carries feedback: %+v", q)
	}
}
