package main

import "leadflow/internal/app"

// @title           LeadFlow API
// @version         1.0
// @description     Marketing lead-management backend: spreadsheet ingestion, deduplication, customer-profile matching and reporting.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in              header
// @name            Authorization
func main() {
	app.Run()
}
