package commands

import (
	"fmt"
	"os"

	"pixline/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("pixline error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println(`Usage: pixline <command> [args]

Commands:
  run <config.yml>   start the API server and pipeline worker
  version            print the version
  help               print this help`) //nolint
}
