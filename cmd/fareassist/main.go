package main

import "github.com/cleitonmarx/symbiont-ai-fareassist/internal/app"

func main() {
	err := app.NewFareAssistApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
