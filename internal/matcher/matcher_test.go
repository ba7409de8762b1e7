package matcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mgoltzsche/echo-vui/internal/catalog"
)

func testMatcher() *Matcher {
	return New(catalog.Default(time.Now))
}

func TestMatch(t *testing.T) {
	testee := testMatcher()

	for _, tc := range []struct {
		name        string
		input       string
		expectedKey string
	}{
		{
			name:        "keyword",
			input:       "tell me a joke",
			expectedKey: "tell me a joke",
		},
		{
			name:        "keyword surrounded by other text",
			input:       "I really love python programming",
			expectedKey: "what is python",
		},
		{
			name:        "keyword within a longer word",
			input:       "that is what she said",
			expectedKey: "what is ai",
		},
		{
			name:        "earlier declared keyword wins",
			input:       "what's the weather like, ai friend",
			expectedKey: "what is ai",
		},
		{
			name:        "earlier declared keyword wins over more specific one",
			input:       "what is ai ethics",
			expectedKey: "what is ai",
		},
		{
			name:        "multi-word keyword",
			input:       "describe path planning to me",
			expectedKey: "what is path planning",
		},
		{
			name:        "many keywords map to the same question",
			input:       "please exit",
			expectedKey: catalog.GoodbyeKey,
		},
		{
			name:        "input is normalized",
			input:       "  WHAT IS SLAM  ",
			expectedKey: "what is slam",
		},
		{
			name:        "fuzzy match",
			input:       "what is a dron",
			expectedKey: "what is a drone",
		},
		{
			name:        "not found",
			input:       "xyz qqq",
			expectedKey: catalog.NotFoundKey,
		},
		{
			name:        "empty input",
			input:       "",
			expectedKey: catalog.NotFoundKey,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			response, key := testee.Match(tc.input)
			require.Equal(t, tc.expectedKey, key, "matched key")
			require.Equal(t, testee.Respond(tc.expectedKey), response, "response")
		})
	}
}

func TestMatchEndToEnd(t *testing.T) {
	testee := testMatcher()

	response, key := testee.Match("tell me a joke")
	require.Equal(t, "tell me a joke", key)
	require.Equal(t, "Why did the robot go on vacation? It needed to recharge!", response)

	response, key = testee.Match("what is slam")
	require.Equal(t, "what is slam", key)
	require.Contains(t, response, "Simultaneous Localization and Mapping")

	response, key = testee.Match("blub")
	require.Equal(t, catalog.NotFoundKey, key)
	require.Equal(t, "I'm not sure I understood that. Could you please repeat?", response)
}

func TestMatchResolvesComputedResponse(t *testing.T) {
	now := time.Date(2024, 1, 2, 13, 4, 5, 0, time.Local)
	testee := New(catalog.Default(func() time.Time { return now }))

	response, key := testee.Match("what time is it")
	require.Equal(t, "what is the time", key)
	require.Equal(t, "The current time is 13:04:05", response)
}

func TestEveryQuestionIsReachableByItself(t *testing.T) {
	testee := testMatcher()

	for _, q := range catalog.Default(time.Now).Questions() {
		actual, score, ok := testee.Closest(q)
		require.Truef(t, ok, "no fuzzy match for %q", q)
		require.Equal(t, q, actual)
		require.Equal(t, 1.0, score)
	}
}

func TestClosest(t *testing.T) {
	c := catalog.MustNew([]catalog.Entry{
		{Question: catalog.NotFoundKey, Response: catalog.Static("?")},
		{Question: "ab", Response: catalog.Static("first")},
		{Question: "ba", Response: catalog.Static("second")},
	}, nil)
	testee := New(c)

	q, score, ok := testee.Closest("a")
	require.True(t, ok)
	require.Equal(t, "ba", q, "ties resolve to the greatest question")
	require.InDelta(t, 2.0/3.0, score, 0.0001)

	_, _, ok = testee.Closest("zzzz")
	require.False(t, ok, "below cutoff")

	testee.Cutoff = 0.7
	_, _, ok = testee.Closest("a")
	require.False(t, ok, "raised cutoff")
}

func TestSimilarity(t *testing.T) {
	require.Equal(t, 1.0, Similarity("what is ros", "what is ros"))
	require.InDelta(t, 0.75, Similarity("abcd", "bcde"), 0.0001)
	require.Equal(t, 0.0, Similarity("abc", "xyz"))
}
