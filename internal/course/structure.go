// Package course holds the fixed course map: 3 units made of 8 lesson nodes
// plus 3 unit tests, with the static vocabulary and fallback content that keep
// the app usable when content generation is unavailable.
package course

import (
	"fmt"
	"strings"
)

// TotalNodes is the number of nodes on the course path: 8 lessons + 3 unit tests.
const TotalNodes = 11

// Node is one step on the course path, either a lesson or a unit test.
// Summary is the one-line description sent to the content generator.
type Node struct {
	ID        int
	UnitIndex int
	IsTest    bool
	Summary   string
}

// DisplayTitle returns the human-facing title for the node.
func (n Node) DisplayTitle() string {
	if n.IsTest {
		return fmt.Sprintf("Unit %d Test", n.UnitIndex)
	}
	return fmt.Sprintf("Lesson %d", n.ID)
}

var nodes = [TotalNodes]Node{
	// Unit 1: lessons 1-3 + test
	{ID: 1, UnitIndex: 1, IsTest: false, Summary: "Unit 1, Lesson 1: Tell about the Kazakh language. Synharmonism is the basis. Comparing language to music."},
	{ID: 2, UnitIndex: 1, IsTest: false, Summary: "Unit 1, Lesson 2: Sounds."},
	{ID: 3, UnitIndex: 1, IsTest: false, Summary: "Unit 1, Lesson 3: First law of synharmonism (a soft vowel creates a soft syllable, a hard vowel creates a hard syllable). Pronouncing бас, доп, қыз, кет, көз, сәт."},
	{ID: 4, UnitIndex: 1, IsTest: true, Summary: "Unit 1 Test: Kazakh language introduction, synharmonism basis, sounds, first law of synharmonism, pronouncing бас, доп, қыз, кет, көз, сәт."},
	// Unit 2: lessons 5-6 + test
	{ID: 5, UnitIndex: 2, IsTest: false, Summary: "Unit 2, Lesson 1: Greeting and farewell (Сәлем, сәлеметсіз бе. Сау бол, сау болыңыз)."},
	{ID: 6, UnitIndex: 2, IsTest: false, Summary: "Unit 2, Lesson 2: First vocabulary (purpose related, e.g. education: мұғалім, сыныптасы). First usage of greeting and farewell (мұғалім - сәлеметсіз бе, сыныптасы - сәлем)."},
	{ID: 7, UnitIndex: 2, IsTest: true, Summary: "Unit 2 Test: Greeting and farewell, first vocabulary (мұғалім, сыныптасы), usage of greetings."},
	// Unit 3: lessons 8-10 + test
	{ID: 8, UnitIndex: 3, IsTest: false, Summary: "Unit 3, Lesson 1: Me and you (мен, сен) + Second vocabulary (e.g. оқушы)."},
	{ID: 9, UnitIndex: 3, IsTest: false, Summary: "Unit 3, Lesson 2: Personal endings (мен: мың, мін, бын, бін, пын, пін. Сен: сың, сің). Personal endings are added to names, professions, verbs, nouns, numerals, adjectives."},
	{ID: 10, UnitIndex: 3, IsTest: false, Summary: "Unit 3, Lesson 3: Usage (Мен мұғаліммін, сен оқушысың)."},
	{ID: 11, UnitIndex: 3, IsTest: true, Summary: "Unit 3 Test: Me and you (мен, сен), vocabulary (оқушы), personal endings, usage (Мен мұғаліммін, сен оқушысың)."},
}

// NodeByID returns the node for a 1-based lesson id and whether it exists.
func NodeByID(id int) (Node, bool) {
	if id < 1 || id > TotalNodes {
		return Node{}, false
	}
	return nodes[id-1], true
}

// AllNodes returns the 11 course nodes in path order.
func AllNodes() []Node {
	out := make([]Node, TotalNodes)
	copy(out, nodes[:])
	return out
}

// IsUnitTest reports whether the node with the given id is a unit test.
// Unknown ids are not tests.
func IsUnitTest(id int) bool {
	n, ok := NodeByID(id)
	return ok && n.IsTest
}

// PriorLessonsSummary joins the summaries of every node before the given one,
// one line per lesson. Used to tell the chat assistant what the learner
// already covered. Returns "" when nothing precedes the node.
func PriorLessonsSummary(upTo int) string {
	if upTo <= 1 {
		return ""
	}
	if upTo > TotalNodes+1 {
		upTo = TotalNodes + 1
	}
	lines := make([]string, 0, upTo-1)
	for i := 1; i < upTo; i++ {
		lines = append(lines, fmt.Sprintf("Lesson %d: %s", i, nodes[i-1].Summary))
	}
	return strings.Join(lines, "\n")
}
