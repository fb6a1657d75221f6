// Command ticket drives the individual ticket pipeline end to end: visitor
// details in, downloadable zoo-ticket-<id>.png out.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"zoo-ticketing/internal/module/ticket/models/request"
	"zoo-ticketing/internal/module/ticket/pricing"
	"zoo-ticketing/internal/module/ticket/qr"
	"zoo-ticketing/internal/module/ticket/render"
	"zoo-ticketing/internal/module/ticket/usecases"
	log_internal "zoo-ticketing/internal/pkg/log"

	"github.com/go-playground/validator/v10"
)

func main() {
	var (
		name     = flag.String("name", "", "ticket holder name")
		age      = flag.Int("age", 0, "ticket holder age")
		gender   = flag.String("gender", "", "ticket holder gender")
		category = flag.String("category", "", "ticket category: adult, child, senior or family")
		visit    = flag.String("visit", "", "visit date (YYYY-MM-DD)")
		outDir   = flag.String("out", ".", "output directory for the ticket image")
	)
	flag.Parse()

	visitDate, err := time.ParseInLocation("2006-01-02", *visit, time.Local)
	if err != nil {
		log.Fatalf("invalid visit date %q: %v", *visit, err)
	}

	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()

	schedule := pricing.Default()
	renderer, err := render.NewRenderer(schedule, render.DefaultOptions())
	if err != nil {
		log.Fatalf("failed to set up renderer: %v", err)
	}

	pipeline := usecases.New(schedule, renderer, qr.NewEncoder(), validator.New(), logger)

	form := request.TicketForm{
		Name:      *name,
		Age:       *age,
		Gender:    *gender,
		Category:  *category,
		VisitDate: visitDate,
	}

	record, err := pipeline.Submit(context.Background(), &form)
	if err != nil {
		log.Fatalf("failed to issue ticket: %v", err)
	}

	artifact, err := pipeline.Download()
	if err != nil {
		log.Fatalf("failed to download ticket: %v", err)
	}

	path := filepath.Join(*outDir, artifact.Filename)
	if err := os.WriteFile(path, artifact.PNG, 0o644); err != nil {
		log.Fatalf("failed to write ticket image: %v", err)
	}

	fmt.Printf("issued %s (CHF%v), valid until %s\n", record.ID, record.Price, record.ValidUntil.Format("2006-01-02"))
	fmt.Println(path)
}
