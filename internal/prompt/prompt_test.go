package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/chunin-dm/internal/prompt"
)

func TestIsYes(t *testing.T) {
	testCases := []struct {
		answer   string
		expected bool
	}{
		{answer: "y", expected: true},
		{answer: " Y \n", expected: true},
		{answer: "yes", expected: false},
		{answer: "n", expected: false},
		{answer: "", expected: false},
		{answer: "是", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.answer, func(t *testing.T) {
			assert.Equal(t, tc.expected, prompt.IsYes(tc.answer))
		})
	}
}

func TestChoice(t *testing.T) {
	options := map[string]string{"t": "taijutsu", "n": "ninjutsu"}

	assert.Equal(t, "ninjutsu", prompt.Choice("N", options, "taijutsu"))
	assert.Equal(t, "ninjutsu", prompt.Choice("ninja", options, "taijutsu"))
	assert.Equal(t, "taijutsu", prompt.Choice("", options, "taijutsu"))
	assert.Equal(t, "taijutsu", prompt.Choice("x", options, "taijutsu"))
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "小李", prompt.OrDefault("  小李 ", "新晋忍者"))
	assert.Equal(t, "新晋忍者", prompt.OrDefault("   ", "新晋忍者"))
}

func TestFunc(t *testing.T) {
	var p prompt.Prompt = prompt.Func(func(q string) string { return q + "!" })
	assert.Equal(t, "hi!", p.Ask("hi"))
}

type ScriptedTestSuite struct {
	suite.Suite
}

func TestScriptedTestSuite(t *testing.T) {
	suite.Run(t, new(ScriptedTestSuite))
}

func (s *ScriptedTestSuite) TestQueueThenEmpty() {
	p := prompt.NewScripted(&prompt.ScriptedConfig{Answers: []string{"a", "b"}})

	s.Equal("a", p.Ask("q1"))
	s.Equal("b", p.Ask("q2"))
	s.Equal("", p.Ask("q3"))
	s.Equal([]string{"q1", "q2", "q3"}, p.Asked())
	s.Equal(0, p.Pending())
}

func (s *ScriptedTestSuite) TestBonusFallbackWinsForBonusQuestions() {
	no := "n"
	yes := "y"
	p := prompt.NewScripted(&prompt.ScriptedConfig{
		Fallback:      &no,
		BonusFallback: &yes,
	})

	s.Equal("y", p.Ask("你要消耗英雄灵感重掷这个检定吗？(y/N): "))
	s.Equal("n", p.Ask("要尝试忍者式作弊吗？(y/N): "))
}

func (s *ScriptedTestSuite) TestDemo() {
	var echo bytes.Buffer
	p := prompt.Demo(&echo)

	s.Equal("新晋忍者", p.Ask("角色名: "))
	s.Equal("t", p.Ask("职业: "))
	s.Equal("k", p.Ask("背景: "))
	s.Equal("y", p.Ask("anything"))
	s.Equal("y", p.Ask("英雄灵感?"))
	s.True(strings.Contains(echo.String(), "角色名: 新晋忍者"))
}

func (s *ScriptedTestSuite) TestNilConfig() {
	p := prompt.NewScripted(nil)
	s.Equal("", p.Ask("q"))
}

func TestConsole(t *testing.T) {
	var out bytes.Buffer
	c := prompt.NewConsole(strings.NewReader("k\r\nsecond\nlast"), &out)

	assert.Equal(t, "k", c.Ask("背景: "))
	assert.Equal(t, "second", c.Ask("q2: "))
	assert.Equal(t, "last", c.Ask("q3: "))
	assert.Equal(t, "", c.Ask("q4: "))
	assert.True(t, strings.HasPrefix(out.String(), "背景: q2: q3: q4: "))
}
