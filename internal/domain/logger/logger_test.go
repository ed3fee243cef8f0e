package logger_test

import (
	"testing"

	"cardsolver/internal/domain/logger"
)

func TestNopLoggerDiscardsEvents(t *testing.T) {
	var l logger.RunLogger = logger.NopLogger{}
	l.Log("run", "state", "damage", "Explore", map[string]interface{}{"x": 1})
	l.Close()
}
