// Command homework-groups builds the homework group workbook from local
// roster files in one batch run.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"homework-groups-go/config"
	"homework-groups-go/grouping"
	"homework-groups-go/models"
	"homework-groups-go/report"
	"homework-groups-go/roster"
	"homework-groups-go/workbook"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("homework-groups: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("homework-groups", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to the YAML config file")
	campusPath := fs.String("campus", "", "campus roster export (.xlsx)")
	onlinePath := fs.String("online", "", "online roster export (.xlsx)")
	taPath := fs.String("tas", "", "TA roster: new TAs, blank line, returning TAs")
	outPath := fs.String("out", "", "output workbook path")
	numGroups := fs.Int("groups", 0, "number of TA groups (overrides config)")
	quiet := fs.Bool("quiet", false, "skip the console report")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	override(&cfg.Files.CampusRoster, *campusPath)
	override(&cfg.Files.OnlineRoster, *onlinePath)
	override(&cfg.Files.TARoster, *taPath)
	override(&cfg.Files.Output, *outPath)
	if *numGroups > 0 {
		cfg.Grouping.NumGroups = *numGroups
	}

	result, err := plan(cfg)
	if err != nil {
		return err
	}

	if err := workbook.Save(cfg.Files.Output, result, cfg.Workbook); err != nil {
		return err
	}
	if !*quiet {
		fmt.Print(report.Render(result))
	}
	return nil
}

func plan(cfg config.Config) (models.Result, error) {
	campus, err := roster.ReadStudentRosterFile(cfg.Files.CampusRoster)
	if err != nil {
		return models.Result{}, err
	}
	online, err := roster.ReadStudentRosterFile(cfg.Files.OnlineRoster)
	if err != nil {
		return models.Result{}, err
	}
	tas, err := roster.ReadTARosterFile(cfg.Files.TARoster)
	if err != nil {
		return models.Result{}, err
	}
	log.Printf("campus size: %d, online size: %d, tas: %d (%d new, %d returning)",
		len(campus), len(online), tas.Total(), len(tas.New), len(tas.Returning))

	return grouping.Run(grouping.Input{
		Campus:       campus,
		Online:       online,
		NewTAs:       tas.New,
		ReturningTAs: tas.Returning,
	}, cfg.Grouping)
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
