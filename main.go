package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	goDebug "runtime/debug"

	"github.com/sirupsen/logrus"

	"github.com/aulesit/licservctl/manager"
	"github.com/aulesit/licservctl/manager/config"
	"github.com/aulesit/licservctl/tui"
)

var (
	version = "1.2.0"
	log     = logrus.New()
	logFile *os.File
)

func main() {
	ver := flag.Bool("version", false, "Prints version")
	cfgPath := flag.String("config", "", "Alternate path to config.ini")
	logLevel := flag.String("log", "INFO", "The log level")
	logTo := flag.String("logto", "file", "Where to log to")

	startZoo := flag.Bool("start-zoo", false, "Start the Zoo service")
	stopZoo := flag.Bool("stop-zoo", false, "Stop the Zoo service")
	restartZoo := flag.Bool("restart-zoo", false, "Restart the Zoo service")
	startAutodesk := flag.Bool("start-autodesk", false, "Start the Autodesk license service")
	stopAutodesk := flag.Bool("stop-autodesk", false, "Stop the Autodesk license service and kill its daemons")
	restartAutodesk := flag.Bool("restart-autodesk", false, "Restart the Autodesk license service")
	status := flag.Bool("status", false, "Print both services' status")
	info := flag.Bool("info", false, "Print the info sheet")
	flag.Parse()

	if *ver {
		showVersionInfo(version)
		return
	}

	setupLogging(logLevel, logTo)
	defer logFile.Close()

	cfg, err := config.Load(*cfgPath, log)
	if err != nil {
		log.Fatalln("reading config:", err)
	}

	m := manager.New(cfg, log, version)

	flags := manager.CLIFlags{
		StartZoo:        *startZoo,
		StopZoo:         *stopZoo,
		RestartZoo:      *restartZoo,
		StartAutodesk:   *startAutodesk,
		StopAutodesk:    *stopAutodesk,
		RestartAutodesk: *restartAutodesk,
		Status:          *status,
		Info:            *info,
	}

	if !flags.Any() {
		if !m.Elevated() {
			manager.WarnNotElevated(version)
		}
		if err := tui.Run(m, version); err != nil {
			log.Fatalln(err)
		}
		return
	}

	// CLI mode; RunCLI prints everything, including the elevation error
	if err := m.RunCLI(context.Background(), flags); err != nil {
		log.Debugln(err)
	}
}

func setupLogging(level, to *string) {
	ll, err := logrus.ParseLevel(*level)
	if err != nil {
		ll = logrus.InfoLevel
	}
	log.SetLevel(ll)

	if *to == "stdout" {
		log.SetOutput(os.Stdout)
		return
	}

	dir := "."
	if self, err := os.Executable(); err == nil {
		dir = filepath.Dir(self)
	}
	logFile, _ = os.OpenFile(filepath.Join(dir, "licservctl.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
	log.SetOutput(logFile)
}

// showVersionInfo prints basic debugging info
func showVersionInfo(ver string) {
	fmt.Println("License Service Manager:", ver)
	fmt.Println("Arch:", runtime.GOARCH)
	bi, ok := goDebug.ReadBuildInfo()
	if ok {
		fmt.Println(bi.String())
	}
}
