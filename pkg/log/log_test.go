package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), " abc ")
	assert.Equal(t, "abc", id)
	assert.Equal(t, "abc", GetCorrelationID(ctx))

	ctx, id = WithCorrelationID(context.Background())
	assert.Len(t, id, 36)
	assert.Equal(t, id, GetCorrelationID(ctx))

	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestSetup(t *testing.T) {
	Setup("warn")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	Setup("nível-inexistente")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestIsRelevantField(t *testing.T) {
	assert.True(t, isRelevantField("artist_id"))
	assert.True(t, isRelevantField("user_email"))
	assert.True(t, isRelevantField(correlationIDField))
	assert.False(t, isRelevantField("referer"))
}

func TestWithFieldsDevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	l := &logger{Entry: logrus.NewEntry(logrus.StandardLogger())}
	filtered := l.WithFields(Fields{"artist_id": "A1", "referer": "x"}).(*logger)
	assert.Equal(t, logrus.Fields{"artist_id": "A1"}, filtered.Data)

	t.Setenv("APP_ENV", "production")
	full := l.WithFields(Fields{"artist_id": "A1", "referer": "x"}).(*logger)
	assert.Len(t, full.Data, 2)
}

func TestForContext(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	SetupTestLogger()

	ctx, id := WithCorrelationID(context.Background(), "corr-9")
	l := ForContext(ctx).(*logger)
	assert.Equal(t, id, l.Data[correlationIDField])
}
