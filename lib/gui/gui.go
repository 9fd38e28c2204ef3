package gui

/*
A lightweight canvas-style chart renderer.
Copyright (C) 2024 Haris Khan

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"simplechart/lib/config"
	"simplechart/lib/util"
)

var (
	log        = logrus.StandardLogger()
	logBuffer  bytes.Buffer
	logBufMux  sync.Mutex
	myApp      fyne.App
	myWindow   fyne.Window
	chartViews = map[string]*ChartView{}
)

const maxLogLength = 3600

type lockedWriter struct {
	w io.Writer
}

func (lw lockedWriter) Write(p []byte) (int, error) {
	logBufMux.Lock()
	defer logBufMux.Unlock()
	return lw.w.Write(p)
}

// loadDefinitions reads path, or returns the landing page charts when path is empty.
func loadDefinitions(path string) (*config.File, error) {
	if path == "" {
		return config.Builtin(), nil
	}
	return config.Load(path)
}

// RunApp opens a window with one tab per chart in the definition file at
// path and blocks until it is closed.
func RunApp(path string, level string) error {
	if err := util.SetupLogging(io.MultiWriter(os.Stderr, lockedWriter{&logBuffer}), level); err != nil {
		return err
	}

	defs, err := loadDefinitions(path)
	if err != nil {
		return err
	}

	myApp = app.NewWithID("com.simplechart.viewer")
	myApp.Settings().SetTheme(&ChartTheme{})
	myWindow = myApp.NewWindow("Charts")

	tabs := container.NewAppTabs()
	for _, def := range defs.Charts {
		cv, err := NewChartView(def)
		if err != nil {
			return err
		}
		chartViews[def.Name] = cv
		tabs.Append(container.NewTabItem(def.Name, container.NewCenter(cv.Image)))
	}

	logsContent := widget.NewLabel("")
	logsContent.Wrapping = fyne.TextWrapWord
	tabs.Append(container.NewTabItem("Logs", container.NewVScroll(logsContent)))
	tabs.OnSelected = func(item *container.TabItem) {
		if item.Text == "Logs" {
			logsContent.SetText(recentLogs())
		}
	}

	reloadButton := widget.NewButton("Reload", func() {
		if err := reload(path); err != nil {
			ShowError("Reload failed", err, myWindow)
		}
	})

	levelSelect := widget.NewSelect(util.LogLevels, func(value string) {
		if lvl, err := util.ParseLogLevel(value); err == nil {
			log.SetLevel(lvl)
		}
	})
	levelSelect.SetSelected(util.LevelName(log.GetLevel()))

	toolbar := container.NewHBox(reloadButton, widget.NewLabel("Logging Level"), levelSelect)
	myWindow.SetContent(container.NewBorder(toolbar, nil, nil, nil, tabs))
	myWindow.Resize(fyne.NewSize(800, 600))

	myWindow.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Reload", reloadButton.OnTapped),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Quit", func() {
				myApp.Quit()
			}),
		),
		fyne.NewMenu("Help",
			fyne.NewMenuItem("About", func() {
				ShowAboutDialog(myWindow)
			}),
		),
	))

	myWindow.ShowAndRun()
	return nil
}

// reload re-reads the definitions and redraws every chart that is still
// defined. Charts added to the file after start-up are ignored.
func reload(path string) error {
	defs, err := loadDefinitions(path)
	if err != nil {
		return err
	}
	for _, def := range defs.Charts {
		cv, ok := chartViews[def.Name]
		if !ok {
			log.WithField("chart", def.Name).Warn("Ignoring chart added after start-up")
			continue
		}
		if err := cv.Update(def); err != nil {
			return err
		}
	}
	log.WithField("charts", len(defs.Charts)).Info("Charts reloaded")
	return nil
}

func recentLogs() string {
	logBufMux.Lock()
	defer logBufMux.Unlock()
	logs := logBuffer.String()
	if len(logs) > maxLogLength {
		logs = logs[len(logs)-maxLogLength:]
	}
	return logs
}

func ShowError(title string, err error, parent fyne.Window) {
	dialog.ShowError(fmt.Errorf("%s: %v", title, err), parent)
}

func ShowAboutDialog(parent fyne.Window) {
	dialog.ShowCustom("About", "Close",
		container.NewVBox(
			widget.NewLabelWithStyle("simplechart", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
			widget.NewLabel(util.BuildInfo()),
		),
		parent,
	)
}
