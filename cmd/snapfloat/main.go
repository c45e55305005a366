package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/esimov/snapfloat"
	"github.com/esimov/snapfloat/imop"
	"github.com/esimov/snapfloat/utils"
)

const HelpBanner = `
┌─┐┌┐┌┌─┐┌─┐┌─┐┬  ┌─┐┌─┐┌┬┐
└─┐│││├─┤├─┘├┤ │  │ │├─┤ │
└─┘┘└┘┴ ┴┴  └  ┴─┘└─┘┴ ┴ ┴

Draggable floating button snapping to the window edges.
    Version: %s

`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	padding     = flag.Float64("padding", 10, "Distance kept from the edge after snapping (dp)")
	fadeEnable  = flag.Bool("fade", false, "Dock the button half outside the window after inactivity")
	fadeOutTime = flag.Duration("fadeout", snapfloat.DefaultFadeOutTime, "Inactivity delay before docking")
	top         = flag.Float64("top", -1, "Initial distance from the top edge (dp)")
	left        = flag.Float64("left", -1, "Initial distance from the left edge (dp)")
	right       = flag.Float64("right", -1, "Initial distance from the right edge (dp)")
	bottom      = flag.Float64("bottom", -1, "Initial distance from the bottom edge (dp)")
	iconSrc     = flag.String("icon", "", "Button icon: file, URL or - for stdin")
	size        = flag.Int("size", int(snapfloat.DefaultButtonSize), "Button size (dp)")
	buttonColor = flag.String("color", "#2196f3", "Button color")
	tintMode    = flag.String("tint", "multiply", "Blend mode of the pressed tint: darken, lighten, multiply, screen, overlay")
	touch       = flag.Bool("touch", false, "Force the touch input family")
	width       = flag.Int("width", 480, "Window width (dp)")
	height      = flag.Int("height", 640, "Window height (dp)")
	debug       = flag.Bool("debug", false, "Log the snap and dock decisions")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	col, err := utils.HexToRGBA(*buttonColor)
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid button color: %v", utils.ErrorMessage), err)
	}
	mode, ok := imop.ParseMode(*tintMode)
	if !ok {
		log.Fatalf(utils.DecorateText("Unsupported tint blend mode: %s", utils.ErrorMessage), *tintMode)
	}
	if *padding < 0 {
		log.Fatalf(utils.DecorateText("The padding should not be negative, got %v", utils.ErrorMessage), *padding)
	}

	var icon image.Image
	if *iconSrc != "" {
		icon = loadIcon(*iconSrc)
	}

	float := &snapfloat.Float{
		Padding:       unit.Dp(*padding),
		FadeOutTime:   *fadeOutTime,
		FadeOutEnable: *fadeEnable,
		Placement: snapfloat.Placement{
			Top:    optional(*top),
			Left:   optional(*left),
			Right:  optional(*right),
			Bottom: optional(*bottom),
		},
		Debug: *debug,
	}
	if *touch {
		float.Touch = touch
	}

	g := &gui{
		float: float,
		button: &snapfloat.Button{
			Icon:  icon,
			Color: col,
			Size:  unit.Dp(*size),

			TintMode: mode,
		},
	}

	go func() {
		w := new(app.Window)
		w.Option(
			app.Title("snapfloat"),
			app.Size(unit.Dp(*width), unit.Dp(*height)),
		)
		if err := g.run(w); err != nil {
			log.Fatalf(utils.DecorateText("Window closed with error: %v", utils.ErrorMessage), err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// loadIcon loads the button icon showing a progress indicator meanwhile.
func loadIcon(src string) image.Image {
	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ SNAPFLOAT", utils.StatusMessage),
		utils.DecorateText("is loading the icon...", utils.DefaultMessage))
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*100, true)

	// Capture CTRL-C signal and restores back the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()
	defer signal.Stop(signalChan)

	now := time.Now()
	spinner.Start()
	img, err := snapfloat.LoadIcon(src, pipeName)
	if err != nil {
		spinner.StopMsg = fmt.Sprintf("%s %s\n",
			utils.DecorateText("⚡ SNAPFLOAT", utils.StatusMessage),
			utils.DecorateText("loading the icon failed ✘", utils.ErrorMessage))
		spinner.Stop()
		log.Fatalf(
			utils.DecorateText("\nFailed to load the icon: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err), utils.DefaultMessage),
		)
	}
	spinner.StopMsg = fmt.Sprintf("%s %s\n",
		utils.DecorateText("⚡ SNAPFLOAT", utils.StatusMessage),
		utils.DecorateText("the icon has been loaded ✔", utils.SuccessMessage))
	spinner.Stop()

	fmt.Fprintf(os.Stderr, "Loading time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	return img
}

// optional converts a negative flag value into an unset placement.
func optional(v float64) *float32 {
	if v < 0 {
		return nil
	}
	return snapfloat.Px(float32(v))
}
