package main

import (
	"jobboard_backend/internal/app"
)

// @title Job Board API
// @version 1.0
// @description Backend for the job board: employer accounts, job posts and
// @description applicant submissions.
// @BasePath /api/v1
func main() {
	app.Run()
}
