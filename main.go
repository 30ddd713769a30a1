package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/circular-loader/internal/config"
	"github.com/ytget/circular-loader/internal/download"
	"github.com/ytget/circular-loader/internal/platform"
	"github.com/ytget/circular-loader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.circular-loader"
	AppName = "Circular Loader"

	WindowWidth  = 375
	WindowHeight = 667
)

func main() {
	// Log version information
	fmt.Printf("Circular Loader v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewLoaderTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Preferences, then environment overrides on top
	settings := config.NewSettings(myApp)
	overrides, err := config.LoadOverrides()
	if err != nil {
		log.Printf("Ignoring environment overrides: %v", err)
	} else {
		settings.Apply(overrides)
	}

	// Initialize services
	downloadSvc := download.NewService(platform.TempDownloadDir(), settings.GetInactivityTimeout())
	lifecycle := platform.NewLifecycleNotifier(myApp)

	screen := ui.NewScreen(settings, downloadSvc, lifecycle)
	myWindow.SetContent(screen)
	myWindow.SetOnClosed(screen.Close)

	// Show and run
	myWindow.ShowAndRun()
}
