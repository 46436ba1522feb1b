package service

import (
	"errors"
	"testing"
	"time"

	"chaosguard/internal/domain"
	"chaosguard/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func newTestModerator(
	spamLimit int,
	classifier Classifier,
	comps *testutil.MockCompetitionRepository,
	scores *testutil.MockScoreRepository,
) *Moderator {
	spam := NewSpamDetector(SpamConfig{
		Limit:        spamLimit,
		Window:       8 * time.Second,
		MuteDuration: 30 * time.Second,
	}, testutil.NewTestLogger())
	filter := NewContentFilter(classifier, scores, FilterConfig{
		WarnThreshold: 3,
		MuteDuration:  5 * time.Minute,
	}, testutil.NewTestLogger())
	competition := NewCompetitionService(comps, scores, 20, testutil.NewTestLogger())

	return NewModerator(spam, filter, competition, testutil.NewTestLogger())
}

func TestModerator_QuietMessage(t *testing.T) {
	classifier := new(testutil.MockClassifier)
	classifier.On("ContainsDisallowed", "hello").Return(false)

	comps := new(testutil.MockCompetitionRepository)
	comps.On("Get", int64(100)).Return((*domain.Competition)(nil), nil)

	scores := new(testutil.MockScoreRepository)

	m := newTestModerator(6, classifier, comps, scores)

	outcome, err := m.Process(7, 100, "hello")

	assert.NoError(t, err)
	assert.Equal(t, domain.ActionNone, outcome.Spam.Action)
	assert.Equal(t, domain.ActionNone, outcome.Content.Action)
	assert.Nil(t, outcome.Answer)
}

func TestModerator_AllThreeChecksFireIndependently(t *testing.T) {
	// A spammy, profane, correct-answer message triggers every action at once
	classifier := new(testutil.MockClassifier)
	classifier.On("ContainsDisallowed", "hello").Return(false)
	classifier.On("ContainsDisallowed", "4").Return(true)

	comps := new(testutil.MockCompetitionRepository)
	comps.On("Get", int64(100)).Return(testutil.NewTestCompetition(100, "What is 2+2?", "4", true), nil)
	comps.On("Deactivate", int64(100)).Return(nil)

	scores := new(testutil.MockScoreRepository)
	scores.On("AddWarning", int64(7), int64(100)).Return(nil)
	scores.On("GetWarnings", int64(7), int64(100)).Return(1, nil)
	scores.On("AddPoints", int64(7), int64(100), 20).Return(nil)

	m := newTestModerator(1, classifier, comps, scores)

	// First message uses up the spam budget
	_, err := m.Process(7, 100, "hello")
	assert.NoError(t, err)

	outcome, err := m.Process(7, 100, "4")

	assert.NoError(t, err)
	assert.Equal(t, domain.ActionMute, outcome.Spam.Action)
	assert.Equal(t, domain.ActionWarn, outcome.Content.Action)
	assert.NotNil(t, outcome.Answer)
	assert.Equal(t, 20, outcome.Answer.Points)
}

func TestModerator_StageErrorDoesNotStopPipeline(t *testing.T) {
	classifier := new(testutil.MockClassifier)
	classifier.On("ContainsDisallowed", "4").Return(true)

	comps := new(testutil.MockCompetitionRepository)
	comps.On("Get", int64(100)).Return(testutil.NewTestCompetition(100, "What is 2+2?", "4", true), nil)
	comps.On("Deactivate", int64(100)).Return(nil)

	scores := new(testutil.MockScoreRepository)
	scores.On("AddWarning", int64(7), int64(100)).Return(errors.New("connection refused"))
	scores.On("AddPoints", int64(7), int64(100), 20).Return(nil)

	m := newTestModerator(6, classifier, comps, scores)

	outcome, err := m.Process(7, 100, "4")

	// The filter failure surfaces, but the answer check still ran
	assert.Error(t, err)
	assert.Equal(t, domain.ActionNone, outcome.Content.Action)
	assert.NotNil(t, outcome.Answer)
}
