package detect_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/quickbom/quickbom/cmd/quickbom/detect"
	"github.com/quickbom/quickbom/cmd/quickbom/internal/cmd"
	"github.com/quickbom/quickbom/cmd/quickbom/internal/testcmd"
	"github.com/quickbom/quickbom/internal/testlogger"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(testlogger.New()))
	testcmd.CommandsUnderTest = []cmd.CommandBuilder{detect.Command}

	os.Exit(m.Run())
}
