package main

import (
	"errors"
	"io/fs"

	"github.com/cleitonmarx/symbiont-library/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional; real environment variables always win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	err := app.NewLibraryApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
