package executor_test

import (
	"testing"

	"wifiscan/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}
