package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/justyntemme/dragdrop"
	"github.com/justyntemme/dragdrop/giodrag"
	"github.com/justyntemme/dragdrop/journal"
)

const dragMIME = "application/x-dragdemo"

type demo struct {
	window  *app.Window
	theme   *material.Theme
	coord   *dragdrop.Coordinator
	binding *giodrag.Binding
	store   *journal.DB
	debug   bool

	entries  []fileEntry
	rowAreas []*giodrag.Area
	dropZone *giodrag.Area

	collected []string
	status    string

	fileList widget.List
	dropList widget.List
}

func newDemo(debugMode bool) *demo {
	d := &demo{
		window:  new(app.Window),
		theme:   material.NewTheme(),
		coord:   dragdrop.NewCoordinator(),
		binding: giodrag.NewBinding(dragMIME),
		store:   journal.NewDB(),
		debug:   debugMode,
		status:  "drag a file into the right pane",
	}
	d.window.Option(app.Title("dragdemo"))
	d.fileList.Axis = layout.Vertical
	d.dropList.Axis = layout.Vertical
	return d
}

func (d *demo) run(startPath string) error {
	if d.debug {
		log.Println("Starting dragdemo in DEBUG mode")
	}

	configDir, _ := os.UserConfigDir()
	if err := d.store.Open(filepath.Join(configDir, "dragdemo", "journal.db")); err != nil {
		log.Printf("Failed to open journal: %v", err)
	}
	go d.store.Start()
	defer func() {
		close(d.store.RequestChan)
		d.store.Close()
	}()

	if startPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			startPath = home
		} else {
			startPath, _ = os.Getwd()
		}
	}
	if err := d.populate(startPath); err != nil {
		return err
	}

	var ops op.Ops
	for {
		switch e := d.window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			d.binding.Update(gtx)
			d.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

// populate lists the directory and wires one drag source per row plus
// the collection pane's drop target.
func (d *demo) populate(path string) error {
	entries, err := listDir(path)
	if err != nil {
		return fmt.Errorf("listing %s: %w", path, err)
	}
	d.entries = entries

	for _, entry := range d.entries {
		area := d.binding.NewArea()
		d.rowAreas = append(d.rowAreas, area)

		name := entry.Name
		if entry.IsDir {
			name += "/"
		}
		area.SetShadow(material.Body2(d.theme, name).Layout)

		src, err := dragdrop.NewSource(d.coord, dragdrop.SourceConfig{
			Data:    []dragdrop.DataItem{dragdrop.Text(entry.Path)},
			Effects: []dragdrop.Effect{dragdrop.EffectCopy, dragdrop.EffectMove},
			View:    area,
		}, area)
		if err != nil {
			return err
		}

		// Late-bound so the callbacks can close over the source itself.
		source := src
		src.OnDrop = func(rec dragdrop.DropRecord) {
			d.store.RequestChan <- journal.Request{
				Op:    journal.RecordGesture,
				Entry: journal.FromDrop(source.EffectToken(), rec),
			}
		}
		src.OnCancel = func(dragdrop.Element) {
			d.status = "drag cancelled"
			d.store.RequestChan <- journal.Request{
				Op:    journal.RecordGesture,
				Entry: journal.FromCancel(source.EffectToken()),
			}
			d.window.Invalidate()
		}
	}

	d.dropZone = d.binding.NewArea()
	_, err = dragdrop.NewTarget(d.coord, dragdrop.TargetConfig{
		Effect: dragdrop.EffectCopy,
		OnDrop: func(rec dragdrop.DropRecord) {
			if path, ok := rec.Data.(string); ok {
				d.collected = append(d.collected, path)
				d.status = fmt.Sprintf("collected %d item(s)", len(d.collected))
			}
			d.window.Invalidate()
		},
	}, d.dropZone)
	return err
}

func (d *demo) layout(gtx layout.Context) layout.Dimensions {
	inset := layout.UniformInset(unit.Dp(8))
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		layout.Flexed(0.5, func(gtx layout.Context) layout.Dimensions {
			return inset.Layout(gtx, d.layoutFiles)
		}),
		layout.Flexed(0.5, func(gtx layout.Context) layout.Dimensions {
			return inset.Layout(gtx, d.layoutCollection)
		}),
	)
}

func (d *demo) layoutFiles(gtx layout.Context) layout.Dimensions {
	return material.List(d.theme, &d.fileList).Layout(gtx, len(d.entries),
		func(gtx layout.Context, i int) layout.Dimensions {
			entry := d.entries[i]
			name := entry.Name
			if entry.IsDir {
				name += "/"
			}
			label := material.Body1(d.theme, name)
			return d.rowAreas[i].Layout(gtx, label.Layout)
		})
}

func (d *demo) layoutCollection(gtx layout.Context) layout.Dimensions {
	return d.dropZone.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(material.H6(d.theme, "Collection").Layout),
			layout.Rigid(material.Caption(d.theme, d.status).Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return material.List(d.theme, &d.dropList).Layout(gtx, len(d.collected),
					func(gtx layout.Context, i int) layout.Dimensions {
						return material.Body2(d.theme, d.collected[i]).Layout(gtx)
					})
			}),
		)
	})
}
