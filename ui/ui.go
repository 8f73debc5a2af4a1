// Package ui draws a session in a pixel window and feeds it mouse and
// keyboard input
package ui

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/they4kman/gosweep/director"
	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/ui/layout"
)

const (
	headerHeight   = 40
	minWindowWidth = 200
)

var (
	colorHidden   = colornames.Silver
	colorFlag     = colornames.Orangered
	colorEmpty    = color.RGBA{R: 77, G: 77, B: 77, A: 255}
	colorNumber   = colornames.White
	colorMineLost = colornames.Red
	colorMineWon  = colornames.Green
	colorLosing   = colornames.Darkred

	numberColors = [9]color.Color{
		colornames.Black,
		colornames.Blue,
		colornames.Green,
		colornames.Red,
		colornames.Navy,
		colornames.Maroon,
		colornames.Teal,
		colornames.Black,
		colornames.Gray,
	}
)

type Options struct {
	Title string

	// Director plays the game automatically when set
	Director         game.Director
	DirectorInterval time.Duration

	Log *logrus.Logger
}

// Run opens a window showing session and blocks until it is closed. It must
// be called from the function passed to pixelgl.Run.
func Run(session *game.Session, options Options) error {
	if options.Title == "" {
		options.Title = "gosweep"
	}
	if options.Log == nil {
		options.Log = logrus.StandardLogger()
	}

	boardWidth := float64(session.Cols() * layout.CellWidth)
	boardHeight := float64(session.Rows() * layout.CellWidth)

	cfg := pixelgl.WindowConfig{
		Title:  options.Title,
		Bounds: pixel.R(0, 0, math.Max(boardWidth, minWindowWidth), boardHeight+headerHeight),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	if options.Director != nil {
		interval := options.DirectorInterval
		if interval <= 0 {
			interval = 250 * time.Millisecond
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go director.Run(ctx, options.Director, session, interval)
	}

	board := newBoardView(win.Bounds().H() - headerHeight)
	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	header := text.New(pixel.V(10, win.Bounds().H()-headerHeight/2-5), atlas)
	numbers := text.New(pixel.ZV, atlas)
	imd := imdraw.New(nil)

	for !win.Closed() {
		if action, ok := board.input(win); ok {
			options.Log.WithField("action", action).Debug("input")
			session.Dispatch(action)
		}

		win.Clear(colornames.Gainsboro)

		view := session.View()
		header.Clear()
		header.Color = colornames.Black
		fmt.Fprintf(header, "%03d", view.MinesRemaining)
		switch view.State {
		case game.Won:
			header.Color = colornames.Green
			fmt.Fprint(header, "   WIN!  (Enter: new game)")
		case game.Lost:
			header.Color = colornames.Red
			fmt.Fprint(header, "   LOSE :(  (Enter: new game)")
		}
		header.Draw(win, pixel.IM)

		imd.Clear()
		numbers.Clear()
		board.draw(imd, numbers, view)
		imd.Draw(win)
		numbers.Draw(win, pixel.IM)

		win.Update()
	}

	return nil
}

type boardView struct {
	layout layout.Board
}

func newBoardView(top float64) *boardView {
	return &boardView{layout: layout.Board{Top: top}}
}

func (view *boardView) input(win *pixelgl.Window) (game.Action, bool) {
	switch {
	case win.JustPressed(pixelgl.KeyEnter):
		return game.Action{Type: game.ActNewGame}, true
	case win.JustPressed(pixelgl.KeyEscape):
		return game.Action{Type: game.ActAbort}, true
	}

	if !win.MouseInsideWindow() {
		return game.Action{}, false
	}

	row, col, ok := view.layout.CellAt(win.MousePosition())
	if !ok {
		return game.Action{}, false
	}
	switch {
	case win.JustReleased(pixelgl.MouseButtonLeft):
		return game.Click(row, col), true
	case win.JustReleased(pixelgl.MouseButtonRight):
		return game.RightClick(row, col), true
	case win.JustReleased(pixelgl.MouseButtonMiddle):
		return game.MiddleClick(row, col), true
	}
	return game.Action{}, false
}

func (view *boardView) draw(imd *imdraw.IMDraw, numbers *text.Text, frame game.View) {
	frame.Grid.Each(func(row, col int, cell game.Cell) {
		rect := view.layout.CellRect(row, col)

		switch {
		case cell.IsFlagged():
			fillRect(imd, rect, colorHidden)
			fillRect(imd, rect.Resized(rect.Center(), rect.Size().Scaled(0.4)), colorFlag)
		case cell.IsHidden():
			fillRect(imd, rect, colorHidden)
		case cell.IsMine():
			fill := colorMineLost
			if frame.State == game.Won {
				fill = colorMineWon
			} else if frame.HasLosingMine && row == frame.LosingRow && col == frame.LosingCol {
				fill = colorLosing
			}
			fillRect(imd, rect, fill)
		case cell.NumMines() == 0:
			fillRect(imd, rect, colorEmpty)
		default:
			fillRect(imd, rect, colorNumber)
			numbers.Dot = rect.Min.Add(pixel.V(6, 5))
			numbers.Color = numberColors[cell.NumMines()]
			fmt.Fprint(numbers, cell.NumMines())
		}
	})
}

func fillRect(imd *imdraw.IMDraw, rect pixel.Rect, c color.Color) {
	imd.Color = c
	imd.Push(rect.Min, rect.Max)
	imd.Rectangle(0) // 0 = filled
}
