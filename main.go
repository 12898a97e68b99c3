package main

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/langlearn/internal/config"
	"github.com/ytget/langlearn/internal/platform"
	"github.com/ytget/langlearn/internal/ui"
	"github.com/ytget/langlearn/internal/vocab"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.langlearn"
	AppName = "LangLearn"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetLastDirectory()); err != nil {
		log.Printf("failed to ensure vocabulary dir: %v", err)
	}

	rootUI := ui.NewRootUI(myWindow, myApp, vocab.NewStore(), settings)

	// A file given on the command line is opened at startup
	if len(os.Args) > 1 {
		rootUI.OpenPath(os.Args[1])
	}

	myWindow.ShowAndRun()
}
