package main

import (
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"time"

	"github.com/trezcool/mdpdash/core/survey"
)

var (
	writeFileFunc = ioutil.WriteFile // mockable

	errHelp    = errors.New("help provided")
	errNoMatch = errors.New("no responses match the given filters")
)

type commandLine struct {
	repo survey.Repository
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  stats [FILTERS] - print aggregate stats over the (filtered) response collection")
	fmt.Println("  export -out FILE [FILTERS] - write the (filtered) response collection to FILE as CSV")
	fmt.Println("Filters: -mdp NAME -function FUNCTION -manager NAME -rotation N -search TEXT")
}

func registerFilterFlags(fs *flag.FlagSet) *survey.Filter {
	filter := new(survey.Filter)
	fs.StringVar(&filter.MDP, "mdp", "", "exact match on the participant's name")
	fs.StringVar(&filter.Function, "function", "", "exact match on the program track")
	fs.StringVar(&filter.Manager, "manager", "", "exact match on the (normalized) manager name")
	fs.StringVar(&filter.Rotation, "rotation", "", "exact match on the rotation number")
	fs.StringVar(&filter.Search, "search", "", "case-insensitive search on participant, manager and function")
	return filter
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	statsCmd := flag.NewFlagSet("stats", flag.ExitOnError)
	statsFilter := registerFilterFlags(statsCmd)

	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportOut := exportCmd.String("out", "", "Destination file. Defaults to the dashboard's own export naming.")
	exportFilter := registerFilterFlags(exportCmd)

	switch args[1] {
	case "stats":
		if err := statsCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.stats(*statsFilter)
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.export(*exportFilter, *exportOut)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) report(filter survey.Filter) (*survey.Report, error) {
	resps, err := cli.repo.QueryAllResponses()
	if err != nil {
		return nil, err
	}
	report := survey.NewReport(resps)
	report.SetFilter(filter)
	return report, nil
}

func (cli *commandLine) stats(filter survey.Filter) error {
	report, err := cli.report(filter)
	if err != nil {
		return err
	}

	stats := report.Stats()
	fmt.Printf("Responses:       %d\n", stats.Count)
	fmt.Printf("Average overall: %s\n", stats.AverageOverall)
	fmt.Printf("Latest rotation: %s\n", stats.LatestRotation)
	return nil
}

func (cli *commandLine) export(filter survey.Filter, out string) error {
	report, err := cli.report(filter)
	if err != nil {
		return err
	}
	if len(report.Filtered()) == 0 {
		return errNoMatch
	}

	if out == "" {
		if filter.IsEmpty() {
			out = survey.AllExportFilename(time.Now())
		} else {
			out = survey.FilteredExportFilename(time.Now())
		}
	}
	if err := writeFileFunc(out, []byte(survey.GenerateCSV(report.Filtered())), 0644); err != nil {
		return err
	}
	fmt.Printf("Exported %d response(s) to %s\n", len(report.Filtered()), out)
	return nil
}
