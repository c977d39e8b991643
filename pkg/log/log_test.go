package log

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForContext_CorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	hook := test.NewGlobal()
	logrus.SetLevel(logrus.InfoLevel)

	ctx, correlationID := WithCorrelationID(context.Background())
	require.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, GetCorrelationID(ctx))

	ForContext(ctx).WithField("run_id", "abc").WithError(errors.New("falha")).Warn("aviso")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, correlationID, entry.Data[correlationIDField])
	assert.Equal(t, "abc", entry.Data["run_id"])
	assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "falha")
}

func TestWithFields_DevelopmentKeepsRelevantFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	hook := test.NewGlobal()

	L.WithFields(Fields{
		"run_id":          "abc",
		"collection_name": "Cool Cats",
		"irrelevante":     1,
	}).Info("mensagem")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "abc", entry.Data["run_id"])
	assert.Equal(t, "Cool Cats", entry.Data["collection_name"])
	assert.NotContains(t, entry.Data, "irrelevante")
}

func TestGetCorrelationID_Empty(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
}
