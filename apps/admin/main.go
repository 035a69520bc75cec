package main

import (
	"log"
	"os"

	"github.com/trezcool/mdpdash/core"
	logsvc "github.com/trezcool/mdpdash/services/logger"
	"github.com/trezcool/mdpdash/storage/jsonfile"
)

func main() {
	defer os.Exit(0)

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(false)

	cli := commandLine{
		repo: jsonfile.NewResponseRepository(conf, logger),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error(err.Error(), err)
		}
		os.Exit(1)
	}
}
